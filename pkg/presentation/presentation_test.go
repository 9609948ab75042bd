package presentation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvk/vankampen/pkg/freegroup"
)

func TestIdentitySimplifierReturnsInputUnchanged(t *testing.T) {
	pr := Presentation{
		Generators: []string{"f1", "f2"},
		Relators:   []freegroup.Word{{1, 2, -1, -2}},
	}
	out, err := IdentitySimplifier{}.Simplify(pr)
	require.NoError(t, err)
	if diff := cmp.Diff(pr, out); diff != "" {
		t.Errorf("IdentitySimplifier changed the presentation (-want +got):\n%s", diff)
	}
}

func TestStringRendersGeneratorsAndRelators(t *testing.T) {
	pr := Presentation{
		Generators: []string{"f1", "f2"},
		Relators:   []freegroup.Word{{1, -2}},
	}
	s := pr.String()
	assert.Contains(t, s, "f1")
	assert.Contains(t, s, "f2⁻¹")
}
