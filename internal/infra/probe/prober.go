package probe

import (
	"context"
	"net/http"
	"time"

	"github.com/mlecomte/urbanstyle/internal/infra/http/middleware"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// HTTPProber faz HEAD com timeout curto e segue redirects. O User-Agent de
// navegador evita respostas 403 de CDNs que barram clients genéricos.
type HTTPProber struct {
	client *http.Client
}

func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout == 0 {
		timeout = 3 * time.Second
	}
	return &HTTPProber{
		client: &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProber) Head(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		middleware.RecordProbe("error")
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		middleware.RecordProbe("ok")
	} else {
		middleware.RecordProbe("miss")
	}
	return resp.StatusCode, nil
}
