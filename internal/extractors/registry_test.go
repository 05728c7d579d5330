package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/companynorm/internal/extractors/money"
)

// registryMockExtractor is a simple mock for testing registry functionality.
type registryMockExtractor struct {
	name string
}

func (m *registryMockExtractor) Name() string                { return m.name }
func (m *registryMockExtractor) Extract(_ any) (int64, bool) { return 1, true }

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.Empty(t, r.Fields())
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register("test", &registryMockExtractor{name: "test"})

	assert.True(t, r.Has("test"))
	assert.False(t, r.Has("other"))

	e, ok := r.Lookup("test")
	require.True(t, ok)
	assert.Equal(t, "test", e.Name())
}

func TestRegistry_Register_Replaces(t *testing.T) {
	r := NewRegistry()
	r.Register("field", &registryMockExtractor{name: "first"})
	r.Register("field", &registryMockExtractor{name: "second"})

	e, ok := r.Lookup("field")
	require.True(t, ok)
	assert.Equal(t, "second", e.Name())
	assert.Len(t, r.Fields(), 1)
}

func TestRegistry_Lookup_Unknown(t *testing.T) {
	r := NewRegistry()

	e, ok := r.Lookup("url")
	assert.False(t, ok)
	assert.Nil(t, e)
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	assert.Equal(t, []string{"employees", "establish_date", "money"}, r.Fields())

	e, _ := r.Lookup("employees")
	assert.Equal(t, "employees", e.Name())
	e, _ = r.Lookup("establish_date")
	assert.Equal(t, "year", e.Name())
	e, _ = r.Lookup("money")
	assert.Equal(t, "money", e.Name())
}

func TestRegisterDefaults_MoneyOptions(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, money.WithCurrencies([]money.Currency{{Marker: "£", Rate: 2}}))

	e, ok := r.Lookup("money")
	require.True(t, ok)

	got, ok := e.Extract("3 £")
	require.True(t, ok)
	assert.Equal(t, int64(6), got)
}
