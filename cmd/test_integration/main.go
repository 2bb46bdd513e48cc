package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	baseURL = "http://localhost:8080"
)

func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	// 1. Health check
	fmt.Println("1. Health check...")
	resp, err := http.Get(baseURL + "/health")
	if err != nil || resp.StatusCode != http.StatusOK {
		fmt.Printf("FAILED: Health check: %v\n", err)
		os.Exit(1)
	}
	resp.Body.Close()

	// 2. Fetch rules for a ZIP code
	fmt.Println("2. Fetching rules for ZIP 90210...")
	if !sendRequest("POST", "/rules", map[string]interface{}{
		"zip":      "90210",
		"guidance": true,
	}) {
		fmt.Println("FAILED: Fetch rules")
		os.Exit(1)
	}

	// 3. Compare canned detected items against the rules
	fmt.Println("3. Comparing detected items...")
	items := []map[string]interface{}{
		{"name": "plastic bottle", "materials": []string{"plastic"}, "confidence": "high", "preparation": "rinse and empty"},
		{"name": "grocery bag", "materials": []string{"plastic film"}, "confidence": "medium"},
		{"name": "pizza box", "materials": []string{"cardboard"}, "confidence": "high"},
	}
	if !sendRequest("POST", "/compare", map[string]interface{}{
		"zip":   "90210",
		"items": items,
	}) {
		fmt.Println("FAILED: Compare items")
		os.Exit(1)
	}

	fmt.Println("Integration test passed.")
}

func sendRequest(method, path string, payload map[string]interface{}) bool {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to marshal payload: %v\n", err)
		return false
	}

	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	fmt.Printf("  %s %s -> %d\n  %s\n", method, path, resp.StatusCode, truncate(string(data), 500))

	return resp.StatusCode == http.StatusOK
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
