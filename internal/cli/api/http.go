package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	fsrepo "RetroBoard/internal/cli/repo/fs"
)

// apiKey — анонимный ключ доступа к сервису; задаётся из конфига перед
// первым запросом и добавляется в каждый запрос.
var apiKey string

// SetAPIKey задаёт анонимный ключ доступа для всех последующих запросов.
func SetAPIKey(key string) {
	apiKey = key
}

func doJSON(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("X-Api-Key", apiKey)
	}
	if token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	b, _ := io.ReadAll(resp.Body)
	return resp, b, nil
}

// GetJSON sends a GET request. If token is non-empty, it is passed as auth cookie.
func GetJSON(url string, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodGet, url, nil, token)
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodPost, url, payload, token)
}

// Delete sends a DELETE request. If token is non-empty, it is passed as auth cookie.
func Delete(url string, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodDelete, url, nil, token)
}

// PersistAuthFromResponse извлекает auth cookie из ответа и сохраняет его через файловое хранилище.
func PersistAuthFromResponse(resp *http.Response) error {
	store := fsrepo.AuthFSStore{}
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return store.Save(c.Value)
		}
	}
	return fmt.Errorf("no auth cookie in response")
}
