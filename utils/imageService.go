package utils

import (
	"internhub/config"
	"log"

	"github.com/go-resty/resty/v2"
)

// RenderWelcomeImage asks the external render service for a personalized
// welcome image for a fresh enrollment. Fire-and-forget: failures are
// logged and never affect the enrollment itself. Skipped when no render
// service is configured.
func RenderWelcomeImage(userName, internshipTitle string) {
	if config.AppConfig.ImageApiURL == "" {
		return
	}

	go func() {
		client := resty.New()
		resp, err := client.R().
			SetHeader("Authorization", "Bearer "+config.AppConfig.ImageApiKey).
			SetFormData(map[string]string{
				"template":   "welcome",
				"name":       userName,
				"internship": internshipTitle,
			}).
			Post(config.AppConfig.ImageApiURL)
		if err != nil {
			log.Printf("[IMAGE] Error rendering welcome image for %s: %v", userName, err)
			return
		}
		if resp.StatusCode() != 200 {
			log.Printf("[IMAGE] Render service returned %d: %s", resp.StatusCode(), resp.String())
			return
		}

		log.Printf("[IMAGE] Welcome image rendered for %s (%s)", userName, internshipTitle)
	}()
}
