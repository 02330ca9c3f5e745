package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlecomte/urbanstyle/internal/usecase"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Café & Cie", "cafe-cie"},
		{"URBANSTYLE", "urbanstyle"},
		{"L'Atelier du Père Noël", "l-atelier-du-pere-noel"},
		{"  Boulangerie   Dupont  ", "boulangerie-dupont"},
		{"Société Générale", "societe-generale"},
		{"123 Réparations!!", "123-reparations"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, usecase.Slugify(tc.name), "slug de %q", tc.name)
	}
}
