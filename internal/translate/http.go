package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ivmikh/notes-keeper/internal/config"
	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/internal/utils"
)

type httpProvider struct {
	client *utils.HTTPClient

	apiKey  string
	apiHost string

	logger *logger.Logger
}

// translateRequest is the wire body of the external translation API.
type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// translateResponse mirrors the provider's success payload; only the
// translated text is read.
type translateResponse struct {
	Data struct {
		Translations struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// NewHTTPProvider constructs the [Provider] backed by the external translation
// API. It normalises and validates the base URL from cfg.APIURL and configures
// the underlying HTTP client with the resolved base URL and the per-request
// timeout from cfg.Timeout.
//
// Returns an error if cfg.APIURL is empty or cannot be parsed as a valid URL.
func NewHTTPProvider(cfg config.Translation, logger *logger.Logger) (Provider, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid translation api url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpProvider{
		client:  client,
		apiKey:  cfg.APIKey,
		apiHost: cfg.APIHost,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Translate implements [Provider]. The request carries the provider's API key
// headers; the deadline is the shorter of ctx and the client timeout.
func (p *httpProvider) Translate(ctx context.Context, text string) (string, error) {
	var result translateResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-rapidapi-key", p.apiKey).
		SetHeader("x-rapidapi-host", p.apiHost).
		SetBody(translateRequest{Q: text, Source: SourceLanguage, Target: TargetLanguage}).
		SetResult(&result).
		Post("")
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %s", ErrTimeout, err)
		}
		return "", fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		p.logger.Error().Int("status", resp.StatusCode()).Msg("translation provider returned non-success status")
		return "", fmt.Errorf("%w: http %d: %s", ErrUnavailable, resp.StatusCode(), body)
	}

	translated := result.Data.Translations.TranslatedText
	if translated == "" {
		return "", fmt.Errorf("%w: empty translation in provider payload", ErrMalformedResponse)
	}

	return translated, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
