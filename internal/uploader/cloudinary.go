// Package uploader implements the image-host client behind the admin
// upload endpoint.  Images are pushed to Cloudinary's REST upload API with
// a signed request; only the resulting URL and metadata come back to the
// caller.
package uploader

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// Cloudinary uploads images to one Cloudinary account.  The zero value is
// a disabled client; Enabled reports whether credentials were supplied.
type Cloudinary struct {
	cloud  string
	key    string
	secret string
	httpc  *http.Client
}

// Result is the subset of Cloudinary's upload response the frontend
// consumes.
type Result struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Format   string `json:"format"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

func NewCloudinary(cloud, key, secret string) *Cloudinary {
	return &Cloudinary{
		cloud:  cloud,
		key:    key,
		secret: secret,
		httpc:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether all credentials are present.
func (u *Cloudinary) Enabled() bool {
	return u.cloud != "" && u.key != "" && u.secret != ""
}

// sign produces the request signature: SHA-1 over the alphabetically
// ordered signed parameters concatenated with the API secret.
func (u *Cloudinary) sign(folder string, timestamp int64) string {
	toSign := fmt.Sprintf("folder=%s&timestamp=%d%s", folder, timestamp, u.secret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}

// Upload sends one image to Cloudinary and returns the hosted URL plus
// metadata.
func (u *Cloudinary) Upload(ctx context.Context, file io.Reader, filename, folder string) (*Result, error) {
	if !u.Enabled() {
		return nil, fmt.Errorf("cloudinary is not configured")
	}
	if folder == "" {
		folder = "uploads"
	}
	timestamp := time.Now().Unix()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	fields := map[string]string{
		"folder":    folder,
		"timestamp": strconv.FormatInt(timestamp, 10),
		"api_key":   u.key,
		"signature": u.sign(folder, timestamp),
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cloud)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("cloudinary returned %d: %s", resp.StatusCode, raw)
	}

	var decoded struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
		Format    string `json:"format"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &Result{
		URL:      decoded.SecureURL,
		PublicID: decoded.PublicID,
		Format:   decoded.Format,
		Width:    decoded.Width,
		Height:   decoded.Height,
	}, nil
}
