package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Provider caches the RSA public keys published at a JWKS endpoint
// (Supabase exposes one per project) and resolves them by key id.
type Provider struct {
	mu        sync.RWMutex
	keys      map[string]*jsonWebKey
	url       string
	client    *http.Client
	refreshed time.Time
}

type jwksDocument struct {
	Keys []jsonWebKey `json:"keys"`
}

type jsonWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func NewProvider(jwksURL string) *Provider {
	return &Provider{
		url:    jwksURL,
		keys:   make(map[string]*jsonWebKey),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// KeyFunc is the jwt.Keyfunc for RS256 tokens.
func (p *Provider) KeyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	kid, ok := token.Header["kid"].(string)
	if !ok {
		return nil, fmt.Errorf("kid header not found")
	}

	key, err := p.lookup(kid)
	if err != nil {
		return nil, err
	}
	return key.publicKey()
}

func (p *Provider) lookup(kid string) (*jsonWebKey, error) {
	p.mu.RLock()
	key, exists := p.keys[kid]
	p.mu.RUnlock()
	if exists {
		return key, nil
	}

	if err := p.refresh(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	key, exists = p.keys[kid]
	p.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("signing key %q not found", kid)
	}
	return key, nil
}

func (p *Provider) refresh() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// At most one refetch per minute
	if time.Since(p.refreshed) < time.Minute && len(p.keys) > 0 {
		return nil
	}

	resp, err := p.client.Get(p.url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks fetch failed: status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return err
	}

	p.keys = make(map[string]*jsonWebKey, len(doc.Keys))
	for i := range doc.Keys {
		p.keys[doc.Keys[i].Kid] = &doc.Keys[i]
	}
	p.refreshed = time.Now()
	return nil
}

func (k *jsonWebKey) publicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}

	var e int
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: e}, nil
}
