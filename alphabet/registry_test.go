package alphabet

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNato(t *testing.T) {
	a, err := Load("nato")
	require.NoError(t, err)

	assert.Equal(t, "NATO phonetic alphabet", a.Name())
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, a.Words("abc"))
}

func TestLoadNatoNumbers(t *testing.T) {
	a, err := Load("nato")
	require.NoError(t, err)

	want := []Spelling{
		{Word: "Four", IsNumber: true},
		{Word: "Two", IsNumber: true},
	}
	assert.Equal(t, want, a.Spell("42"))
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("klingon")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("nato"))
	assert.ErrorIs(t, Validate("klingon"), ErrNotFound)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names), "Names() not sorted: %v", names)
	assert.Contains(t, names, "nato")
	assert.Contains(t, names, "de-DE")
}

func TestList(t *testing.T) {
	infos, err := List()
	require.NoError(t, err)
	require.Len(t, infos, len(Names()))

	byCode := make(map[string]string)
	for _, info := range infos {
		assert.NotEmptyf(t, info.Name, "display name for %s", info.Code)
		byCode[info.Code] = info.Name
	}
	assert.Equal(t, "Dutch (Netherlands)", byCode["nl-NL"])
}

func TestLoadAllEmbedded(t *testing.T) {
	for _, code := range Names() {
		t.Run(code, func(t *testing.T) {
			a, err := Load(code)
			require.NoError(t, err)
			assert.Greater(t, a.Len(), 20)
			assert.NotEmpty(t, a.Spell("abc"))
		})
	}
}

func TestLoadGermanDigraphs(t *testing.T) {
	a, err := Load("de-DE")
	require.NoError(t, err)

	assert.Equal(t, []string{"Schule", "Charlotte", "Ärger"}, a.Words("schchä"))
	assert.Equal(t, []string{"Charlotte"}, a.Words("Ch"))
}

func TestLoadSpanishDigraphs(t *testing.T) {
	a, err := Load("es-ES")
	require.NoError(t, err)

	assert.Equal(t, []string{"Llobregat", "Lorenzo"}, a.Words("lll"))
	assert.Equal(t, []string{"Chocolate"}, a.Words("ch"))
}

func TestLoadDutchDigraph(t *testing.T) {
	a, err := Load("nl-NL")
	require.NoError(t, err)

	assert.Equal(t, []string{"IJmuiden", "Johan"}, a.Words("ijj"))
}
