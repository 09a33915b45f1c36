package warning

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitRecordsWarning(t *testing.T) {
	c := New()
	c.Emit(NamespaceAxisDeprecated, "step 1", "namespace::foo")

	got := c.Warnings()
	require.Len(t, got, 1)
	require.Equal(t, NamespaceAxisDeprecated, got[0].Code)
	require.Equal(t, Caution, got[0].Severity)
	require.Equal(t, CategoryDeprecated, got[0].Category)
	require.Equal(t, "namespace::foo", got[0].Expression)
}

func TestMinSeverityFilter(t *testing.T) {
	c := New(WithMinSeverity(Severe))
	c.Emit(NamespaceAxisDeprecated, "ctx", "") // Caution, below the floor
	c.Emit(UnsupportedFeatureDowngraded, "ctx", "")

	got := c.Warnings()
	require.Len(t, got, 1)
	require.Equal(t, UnsupportedFeatureDowngraded, got[0].Code)
}

func TestSuppressedCode(t *testing.T) {
	c := New(WithSuppressedCode(NamespaceAxisDeprecated))
	c.Emit(NamespaceAxisDeprecated, "ctx", "")
	c.Emit(UntypedAtomicCoercion, "ctx", "")

	require.Len(t, c.Warnings(), 1)
}

func TestSuppressedCategory(t *testing.T) {
	c := New(WithSuppressedCategory(CategoryCoercion))
	c.Emit(UntypedAtomicCoercion, "ctx", "")
	c.Emit(LosslessCastUnavailable, "ctx", "")
	c.Emit(NamespaceAxisDeprecated, "ctx", "")

	require.Len(t, c.Warnings(), 1)
}

func TestDedupe(t *testing.T) {
	c := New(WithDedupe(true))
	c.Emit(NamespaceAxisDeprecated, "step 1", "namespace::foo")
	c.Emit(NamespaceAxisDeprecated, "step 1", "namespace::foo")
	c.Emit(NamespaceAxisDeprecated, "step 2", "namespace::bar")

	require.Len(t, c.Warnings(), 2)
}

func TestWithoutDedupeRecordsDuplicates(t *testing.T) {
	c := New()
	c.Emit(NamespaceAxisDeprecated, "step 1", "namespace::foo")
	c.Emit(NamespaceAxisDeprecated, "step 1", "namespace::foo")

	require.Len(t, c.Warnings(), 2)
}

func TestMaxWarningsCapsAndCountsDropped(t *testing.T) {
	c := New(WithMaxWarnings(2))
	for i := 0; i < 5; i++ {
		c.Emit(UntypedAtomicCoercion, "ctx", "")
	}

	require.Len(t, c.Warnings(), 2)
	require.Equal(t, 3, c.Dropped())
}

func TestHandlerInvokedPerSurvivingWarning(t *testing.T) {
	var seen []Warning
	c := New(WithHandler(func(w Warning) { seen = append(seen, w) }))
	c.Emit(NamespaceAxisDeprecated, "ctx", "")
	c.Emit(UnsupportedFeatureDowngraded, "ctx", "")

	require.Len(t, seen, 2)
}

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Printf(format string, v ...interface{}) {
	r.lines = append(r.lines, format)
}

func TestLoggerHandlerAdaptsLogger(t *testing.T) {
	l := &recordingLogger{}
	c := New(WithHandler(LoggerHandler(l)))
	c.Emit(NamespaceAxisDeprecated, "ctx", "")

	require.Len(t, l.lines, 1)
}

func TestNilCollectorIsANoOp(t *testing.T) {
	var c *Collector
	require.NotPanics(t, func() {
		c.Emit(NamespaceAxisDeprecated, "ctx", "")
	})
	require.Nil(t, c.Warnings())
	require.Equal(t, 0, c.Dropped())
}

func TestRegisterAddsNewCode(t *testing.T) {
	const custom Code = "test-custom-warning"
	Register(custom, Severe, CategoryPerformance, "custom diagnostic")

	c := New()
	c.Emit(custom, "ctx", "")
	got := c.Warnings()
	require.Len(t, got, 1)
	require.Equal(t, Severe, got[0].Severity)
	require.Equal(t, CategoryPerformance, got[0].Category)
}
