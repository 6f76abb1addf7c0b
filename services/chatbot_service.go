package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/trung2605/bakery-assginment-be/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// ChatMessage is one turn of the conversation as the frontend keeps it. The
// chat is stateless on the server: the client replays its history with every
// request.
type ChatMessage struct {
	Text      string `json:"text"`
	Sender    string `json:"sender"` // "user" or "bot"
	Timestamp string `json:"timestamp"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// ChatbotService proxies chat turns to the Gemini generateContent API,
// priming the model with the current catalog and branch list so it answers
// from live data instead of a hardcoded dump.
type ChatbotService struct {
	db       *gorm.DB
	products *repository.ProductRepository
	branches *repository.BranchRepository
	client   *http.Client
	apiKey   string
	model    string
	log      *zap.Logger
}

func NewChatbotService(db *gorm.DB, products *repository.ProductRepository, branches *repository.BranchRepository, apiKey, model string, log *zap.Logger) *ChatbotService {
	return &ChatbotService{
		db:       db,
		products: products,
		branches: branches,
		client:   &http.Client{Timeout: 30 * time.Second},
		apiKey:   apiKey,
		model:    model,
		log:      log,
	}
}

// Greeting is the canned opener served by GET /api/chatbot/greet.
func (s *ChatbotService) Greeting() string {
	return "Hi! I'm the Dola Bakery assistant. Ask me anything about our cakes, breads, branches or opening hours."
}

// SendMessage forwards one user turn plus its history to Gemini and returns
// the model's reply text.
func (s *ChatbotService) SendMessage(ctx context.Context, userMessage string, history []ChatMessage) (string, error) {
	instruction, err := s.buildInstruction()
	if err != nil {
		return "", err
	}

	contents := []geminiContent{
		{Role: "user", Parts: []geminiPart{{Text: instruction}}},
		{Role: "model", Parts: []geminiPart{{Text: "Understood. I'm ready to help customers of Dola Bakery."}}},
	}
	for _, msg := range history {
		contents = append(contents, geminiContent{
			Role:  geminiRole(msg.Sender),
			Parts: []geminiPart{{Text: msg.Text}},
		})
	}
	contents = append(contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: userMessage}}})

	body, err := json.Marshal(geminiRequest{Contents: contents})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(geminiEndpoint, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.log.Error("gemini call failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// buildInstruction renders the system prompt from the current product catalog
// and branch list.
func (s *ChatbotService) buildInstruction() (string, error) {
	products, err := s.products.List(s.db, "")
	if err != nil {
		return "", err
	}
	branches, err := s.branches.List(s.db)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are the virtual assistant of Dola Bakery, specialising in cakes, breads and desserts. ")
	b.WriteString("Answer questions about products, promotions, opening hours, branch addresses, and help with ordering. ")
	b.WriteString("Stay friendly and professional; if a question is out of scope, politely steer back to bakery topics. ")
	b.WriteString("Format product lists with Markdown: bold headings per category, bullet points per item.\n\n")

	b.WriteString("Current products (name | price VND | category | in stock | shelf life):\n")
	for _, p := range products {
		fmt.Fprintf(&b, "* %s | %d | %s | %d | %s\n", p.Name, p.Price, p.Category, p.StockQuantity, p.ExpirationDate)
	}
	b.WriteString("\nBranches (name | address | hotline):\n")
	for _, br := range branches {
		fmt.Fprintf(&b, "* %s | %s | %s\n", br.Name, br.Address, br.Hotline)
	}
	return b.String(), nil
}

// geminiRole maps frontend sender labels onto the two roles the API accepts.
func geminiRole(sender string) string {
	switch strings.ToLower(sender) {
	case "model", "bot", "assistant":
		return "model"
	default:
		return "user"
	}
}
