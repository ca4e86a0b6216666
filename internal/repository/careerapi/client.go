package careerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"go-hr-website/internal/domain"
	"go-hr-website/pkg/logger"
)

// HTTPClient posts career applications to the remote API as multipart forms.
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
}

var _ domain.CareerAPI = (*HTTPClient)(nil)

// NewClient returns a client for endpoint. The default http.Client has no
// timeout; a request only ends when the server answers or ctx is cancelled.
func NewClient(endpoint string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: httpClient,
	}
}

type submitResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SubmitApplication sends form in a single POST. Business failures carry the
// server's error text; anything else that goes wrong is a transport failure.
func (c *HTTPClient) SubmitApplication(ctx context.Context, form domain.ApplicationForm) domain.SubmissionResult {
	parsed, err := c.post(ctx, form)
	if err != nil {
		logger.Log.Error("Career API request failed", "endpoint", c.endpoint, "error", err)
		return domain.Failure(domain.MsgTransportError)
	}
	if !parsed.Success {
		return domain.Failure(domain.BusinessFailureMessage(parsed.Error))
	}
	return domain.Success()
}

func (c *HTTPClient) post(ctx context.Context, form domain.ApplicationForm) (submitResponse, error) {
	body, contentType, err := encodeApplication(form)
	if err != nil {
		return submitResponse{}, fmt.Errorf("encode application: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return submitResponse{}, fmt.Errorf("create application request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return submitResponse{}, fmt.Errorf("send application request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return submitResponse{}, fmt.Errorf("read application response: %w", err)
	}

	// Declined applications come back as 2xx with success=false. Any other
	// status counts as a transport failure, whatever the body says.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return submitResponse{}, fmt.Errorf("career api returned status %d", resp.StatusCode)
	}
	var parsed submitResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return submitResponse{}, fmt.Errorf("decode application response: %w", err)
	}
	return parsed, nil
}

// encodeApplication writes the five text fields and the resume file.
func encodeApplication(form domain.ApplicationForm) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, field := range domain.TextFields {
		value, err := form.Text(field)
		if err != nil {
			return nil, "", err
		}
		if err := w.WriteField(field, value); err != nil {
			return nil, "", err
		}
	}

	if form.Resume != nil {
		part, err := w.CreatePart(resumeHeader(form.Resume))
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(form.Resume.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func resumeHeader(file *domain.ResumeFile) textproto.MIMEHeader {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		domain.FieldResume, quoteEscaper.Replace(file.Filename)))
	h.Set("Content-Type", contentType)
	return h
}
