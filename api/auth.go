// File: api/auth.go
package api

import (
	"context"

	"hobyhub/config"
	"hobyhub/models"
)

// GenerateOTP asks the upstream to send a one-time code to the given phone
// number. The reCAPTCHA token guards against OTP abuse; the configured site
// key rides along so the upstream can verify the token against the right
// widget. Returns the request id the verification call must echo back.
func (c *Client) GenerateOTP(ctx context.Context, phoneNumber, recaptchaToken string) (string, error) {
	body := map[string]string{
		"phoneNumber":      phoneNumber,
		"recaptchaToken":   recaptchaToken,
		"recaptchaSiteKey": config.AppConfig.RecaptchaSiteKey,
	}
	var resp struct {
		RequestID string `json:"requestId"`
	}
	if err := c.post(ctx, "/api/v1/auth/otp", body, "", &resp); err != nil {
		return "", err
	}
	if resp.RequestID == "" {
		return "", &Error{Code: "malformed_response", Message: "OTP response is missing a request id"}
	}
	return resp.RequestID, nil
}

// VerifyOTP exchanges a code for an auth token and profile.
func (c *Client) VerifyOTP(ctx context.Context, requestID, code string) (*models.AuthResult, error) {
	body := map[string]string{
		"requestId": requestID,
		"otp":       code,
	}
	var result models.AuthResult
	if err := c.post(ctx, "/api/v1/auth/verify", body, "", &result); err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, &Error{Code: "malformed_response", Message: "verification response is missing a token"}
	}
	return &result, nil
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context, token string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.get(ctx, "/api/v1/profile", token, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile writes profile changes upstream and returns the stored copy.
func (c *Client) UpdateProfile(ctx context.Context, token string, profile models.UserProfile) (*models.UserProfile, error) {
	var updated models.UserProfile
	if err := c.put(ctx, "/api/v1/profile", profile, token, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
