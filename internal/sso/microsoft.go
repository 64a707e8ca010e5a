// Package sso adapts the organization's Microsoft identity platform login to
// a verified models.Identity.
package sso

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"synergy/internal/config"
	"synergy/internal/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

const graphMeURL = "https://graph.microsoft.com/v1.0/me"

var ErrNoEmail = errors.New("identity provider returned no email")

type Provider struct {
	oauth *oauth2.Config
	meURL string
}

func NewMicrosoft(cfg *config.OAuth) *Provider {
	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile", "User.Read"},
			Endpoint:     microsoft.AzureADEndpoint(cfg.TenantID),
		},
		meURL: graphMeURL,
	}
}

func (p *Provider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

type graphUser struct {
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
	DisplayName       string `json:"displayName"`
	EmployeeID        string `json:"employeeId"`
}

// Exchange trades the authorization code for a token and reads the signed-in
// user's profile from Microsoft Graph.
func (p *Provider) Exchange(ctx context.Context, code string) (*models.Identity, error) {
	const op = "sso.Exchange"

	tok, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: token exchange failed: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.meURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := p.oauth.Client(ctx, tok).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: profile request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: profile request returned %d", op, resp.StatusCode)
	}

	var u graphUser
	if err = json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("%s: failed to decode profile: %w", op, err)
	}

	email := u.Mail
	if email == "" {
		email = u.UserPrincipalName
	}
	if email == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoEmail)
	}

	roll := u.EmployeeID
	if roll == "" {
		roll = "N/A"
	}

	return &models.Identity{
		Email:      email,
		Name:       u.DisplayName,
		RollNumber: roll,
	}, nil
}
