package service

import (
	"fmt"
	"strings"

	"github.com/allisson/pseudonym/internal/errors"
	"github.com/allisson/pseudonym/internal/masking/domain"
)

// AssertNoLeak fails when any PII-shaped substring detected in the
// original still appears verbatim in the masked output. It is a
// pipeline halt, not a data-shape warning.
func AssertNoLeak(original, masked string) error {
	for _, span := range Detect(original) {
		if strings.Contains(masked, span.RawMatch) {
			return errors.Wrap(errors.ErrGuardViolation, fmt.Sprintf("detected %s value leaked into masked output", span.Type))
		}
	}
	return nil
}

// AssertDemoTenant fails unless the context's tenant id carries one of
// the allowed demo prefixes. Callers use it to keep masking pipelines
// meant for demo data away from production tenants.
func AssertDemoTenant(mctx *domain.Context, allowedPrefixes ...string) error {
	if len(allowedPrefixes) == 0 {
		allowedPrefixes = []string{"demo-"}
	}
	for _, prefix := range allowedPrefixes {
		if strings.HasPrefix(mctx.TenantID(), prefix) {
			return nil
		}
	}
	return errors.Wrap(errors.ErrGuardViolation, fmt.Sprintf("tenant %q is not demo-designated", mctx.TenantID()))
}
