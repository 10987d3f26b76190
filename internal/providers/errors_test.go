package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestProviderErrorString(t *testing.T) {
	cases := []struct {
		name string
		err  *ProviderError
		want string
	}{
		{"message_verbatim", &ProviderError{Message: "PlayerID is invalid", StatusCode: 400}, "PlayerID is invalid"},
		{"wrapped_error", &ProviderError{Err: errors.New("dial tcp: refused")}, "dial tcp: refused"},
		{"status_only", &ProviderError{Provider: "nbastats", Op: OpGameLog, StatusCode: 502}, "nbastats player_game_log failed (status=502)"},
		{"kind_only", &ProviderError{Provider: "nbastats", Op: OpGameLog, Kind: KindDecode}, "nbastats player_game_log failed (decode)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestAsProviderErrorUnwrapsChains(t *testing.T) {
	inner := &ProviderError{Kind: KindRateLimited, StatusCode: 429}
	wrapped := fmt.Errorf("fetch: %w", inner)

	got, ok := AsProviderError(wrapped)
	if !ok || got != inner {
		t.Fatalf("expected to unwrap provider error")
	}
	if !IsRateLimited(wrapped) {
		t.Fatalf("expected rate limited classification")
	}
	if IsRateLimited(errors.New("plain")) {
		t.Fatalf("plain errors are not rate limited")
	}
}

func TestClassifyWrapsPlainErrors(t *testing.T) {
	base := errors.New("connection reset")
	err := Classify("nbastats", OpCareerTotals, KindTransport, base)

	pErr, ok := AsProviderError(err)
	if !ok {
		t.Fatalf("expected provider error, got %T", err)
	}
	if pErr.Kind != KindTransport || pErr.Provider != "nbastats" || pErr.Op != OpCareerTotals {
		t.Fatalf("unexpected classification %+v", pErr)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected original error preserved")
	}
	if err.Error() != "connection reset" {
		t.Fatalf("expected message verbatim, got %q", err.Error())
	}
}

func TestClassifyKeepsExistingClassification(t *testing.T) {
	if Classify("p", "op", KindTransport, nil) != nil {
		t.Fatalf("expected nil passthrough")
	}

	decoded := &ProviderError{Provider: "nbastats", Op: OpGameLog, Kind: KindDecode, Message: "missing result set"}
	if got := Classify("other", OpCareerTotals, KindTransport, decoded); got != error(decoded) {
		t.Fatalf("expected fully classified error returned as-is")
	}
}

func TestClassifyDoesNotMutateSentinel(t *testing.T) {
	err := Classify("nbastats", OpGameLog, KindTransport, ErrProviderUnavailable)

	pErr, _ := AsProviderError(err)
	if pErr == ErrProviderUnavailable {
		t.Fatalf("expected a copy of the sentinel")
	}
	if pErr.Provider != "nbastats" || pErr.Kind != KindUnavailable {
		t.Fatalf("unexpected filled error %+v", pErr)
	}
	if ErrProviderUnavailable.Provider != "" || ErrProviderUnavailable.Op != "" {
		t.Fatalf("sentinel was mutated: %+v", ErrProviderUnavailable)
	}
}
