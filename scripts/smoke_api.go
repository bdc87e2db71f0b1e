// +build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Ручная проверка поднятого API: health, регистрация, вход, списки.
// Запуск: go run scripts/smoke_api.go -base http://localhost:8080

func main() {
	baseURL := flag.String("base", "http://localhost:8080", "API base URL")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	// Health
	resp, err := client.Get(*baseURL + "/api/v1/health")
	if err != nil {
		log.Fatalf("Failed to reach API: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("❌ Health check failed: %s", resp.Status)
	}
	fmt.Printf("✅ Health OK\n")

	// Регистрация тестового пользователя
	email := fmt.Sprintf("smoke-%d@example.com", time.Now().Unix())
	body, _ := json.Marshal(map[string]string{
		"email":        email,
		"password":     "Sm0ke!test",
		"default_lang": "en",
	})
	resp, err = client.Post(*baseURL+"/api/v1/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to register: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("❌ Register failed: %s", resp.Status)
	}
	fmt.Printf("✅ Registered %s (inactive until email confirmation)\n", email)

	// Вход без подтверждения должен быть отклонён
	body, _ = json.Marshal(map[string]string{"email": email, "password": "Sm0ke!test"})
	resp, err = client.Post(*baseURL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to login: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		log.Fatalf("❌ Expected 403 for unconfirmed account, got %s", resp.Status)
	}
	fmt.Printf("✅ Unconfirmed account correctly rejected at login\n")

	// Публичные списки
	for _, path := range []string{
		"/api/v1/cities?lang=en",
		"/api/v1/venue-types?lang=ru",
		"/api/v1/event-types?lang=he",
		"/api/v1/venues?lang=en",
		"/api/v1/events?lang=en&sort=asc",
	} {
		resp, err = client.Get(*baseURL + path)
		if err != nil {
			log.Fatalf("Failed to GET %s: %v", path, err)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			resp.Body.Close()
			log.Fatalf("❌ Invalid JSON from %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			log.Fatalf("❌ GET %s failed: %s", path, resp.Status)
		}
		fmt.Printf("✅ GET %s (count=%v)\n", path, payload["count"])
	}

	fmt.Printf("\n✅ Smoke test passed\n")
}
