// Package client implements the HTTP API client used by the CLI.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"expenso/internal/models"
)

const (
	apiRegister = "/auth/register"
	apiLogin    = "/auth/login"
	apiDelete   = "/auth/delete"
	apiExpenses = "/expenses"
)

// API talks to the expense tracker backend. It holds the session token
// after a successful login and sends it as "Authorization: Bearer <token>"
// on every protected call. One call per user action, no retries: a
// failed call returns an error and leaves prior state unchanged.
type API struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New constructs an API client for the given base URL.
func New(httpClient *http.Client, baseURL string) *API {
	return &API{httpClient: httpClient, baseURL: baseURL}
}

// LoggedIn reports whether a session token is held.
func (a *API) LoggedIn() bool {
	return a.token != ""
}

// Logout drops the held session token.
func (a *API) Logout() {
	a.token = ""
}

// do sends a JSON request and decodes the JSON response into out
// (skipped when out is nil). Non-2xx responses are returned as errors
// carrying the server's message.
func (a *API) do(method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		if msg.Message == "" {
			msg.Message = resp.Status
		}
		return fmt.Errorf("%s %s: %s", method, path, msg.Message)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Register creates a new account.
func (a *API) Register(name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return a.do(http.MethodPost, apiRegister, body, nil)
}

// Login authenticates and stores the returned session token for
// subsequent calls.
func (a *API) Login(email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var result struct {
		Token string `json:"token"`
	}
	if err := a.do(http.MethodPost, apiLogin, body, &result); err != nil {
		return err
	}
	a.token = result.Token
	return nil
}

// DeleteAccount removes the account and all its expenses, then drops
// the session token.
func (a *API) DeleteAccount() error {
	if err := a.do(http.MethodDelete, apiDelete, nil, nil); err != nil {
		return err
	}
	a.token = ""
	return nil
}

// ListExpenses fetches all expenses owned by the logged-in user.
func (a *API) ListExpenses() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := a.do(http.MethodGet, apiExpenses, nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// AddExpense creates an expense and returns the stored record.
func (a *API) AddExpense(title string, amount float64, category string) (*models.Expense, error) {
	body := map[string]any{"title": title, "amount": amount, "category": category}
	var exp models.Expense
	if err := a.do(http.MethodPost, apiExpenses, body, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// UpdateExpense partially updates an expense. Zero-value fields are
// left unchanged by the server.
func (a *API) UpdateExpense(id, title string, amount float64, category string) (*models.Expense, error) {
	body := map[string]any{"title": title, "amount": amount, "category": category}
	var exp models.Expense
	if err := a.do(http.MethodPut, apiExpenses+"/"+id, body, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// DeleteExpense removes an expense by id.
func (a *API) DeleteExpense(id string) error {
	return a.do(http.MethodDelete, apiExpenses+"/"+id, nil, nil)
}
