package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/autoload/internal/core/domain"
)

func TestSeverity_Fatal(t *testing.T) {
	fatal := []domain.Severity{domain.SeverityError, domain.SeverityParse, domain.SeverityUserError}
	for _, s := range fatal {
		assert.Truef(t, s.Fatal(), "%s should be fatal", s)
	}

	nonFatal := []domain.Severity{
		domain.SeverityRecoverable,
		domain.SeverityWarning,
		domain.SeverityNotice,
		domain.SeverityDeprecated,
	}
	for _, s := range nonFatal {
		assert.Falsef(t, s.Fatal(), "%s should not be fatal", s)
	}
}

func TestHostError_Format(t *testing.T) {
	e := domain.HostError{
		Severity: domain.SeverityParse,
		Message:  "syntax error, unexpected '}'",
		File:     "/app/src/Foo.php",
		Line:     12,
	}

	assert.Equal(t, "Parse: syntax error, unexpected '}' in /app/src/Foo.php on line 12", e.Format())
	assert.Equal(t, "Parse: syntax error, unexpected '}' - see log", e.Summary())
	assert.True(t, e.Fatal())
}
