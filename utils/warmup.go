package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"tcb/config"
)

// WarmupGenerationBackend fires a best-effort ping at the text-generation
// backend so the first question in a fresh chat session does not pay the
// cold-start cost. Fire-and-forget: failures are logged and never surface to
// the request that triggered the ping.
func WarmupGenerationBackend(textbookID string) {
	url := config.AppConfig.WarmupURL
	if url == "" {
		return
	}

	go func() {
		client := resty.New().SetTimeout(3 * time.Second)
		resp, err := client.R().
			SetQueryParam("textbook_id", textbookID).
			Post(url)
		if err != nil {
			log.Printf("warmup ping failed: %v", err)
			return
		}
		log.Printf("warmup ping sent, status %d", resp.StatusCode())
	}()
}
