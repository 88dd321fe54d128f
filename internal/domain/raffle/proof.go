package raffle

import (
	"bytes"
	"encoding/json"

	"raffle-draw/internal/pkg/errs"
)

// RandomnessProof carries the drawn numbers plus the provider's signed payload.
// Random holds the provider's "random" object byte-for-byte so the signature
// stays verifiable.
type RandomnessProof struct {
	RangeLow       int             `json:"min"`
	RangeHigh      int             `json:"max"`
	Numbers        []int           `json:"numbers"`
	SerialNumber   int64           `json:"serialNumber"`
	CompletionTime string          `json:"completionTime"`
	HashedAPIKey   string          `json:"hashedApiKey"`
	KeyID          string          `json:"keyId"`
	Random         json.RawMessage `json:"random"`
	Signature      string          `json:"signature"`
}

var ErrMalformedProof = errs.Mark(errs.New("randomness result does not match the request"), errs.ErrProviderError)

// Validate checks count, range and distinctness of the numbers.
func (p *RandomnessProof) Validate(low, high, count int) error {
	if len(p.Numbers) != count {
		return ErrMalformedProof
	}
	seen := make(map[int]struct{}, count)
	for _, n := range p.Numbers {
		if n < low || n > high {
			return ErrMalformedProof
		}
		if _, dup := seen[n]; dup {
			return ErrMalformedProof
		}
		seen[n] = struct{}{}
	}
	if len(p.Random) == 0 || p.Signature == "" {
		return ErrMalformedProof
	}
	return nil
}

// VerificationPayload is the indented "random" object as it would be pasted into
// the provider's signature verification form.
func (p *RandomnessProof) VerificationPayload() (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, p.Random, "", "  "); err != nil {
		return "", errs.Wrap(err, "failed to format verification payload")
	}
	return buf.String(), nil
}
