package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppURL(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "spaces become %20 not plus",
			message: "Bonjour tout le monde",
			want:    "https://wa.me/221778775858?text=Bonjour%20tout%20le%20monde",
		},
		{
			name:    "newlines and punctuation are escaped",
			message: "Bonjour, je souhaite commander :\nMixeur x1 (25000 FCFA)",
			want:    "https://wa.me/221778775858?text=Bonjour%2C%20je%20souhaite%20commander%20%3A%0AMixeur%20x1%20%2825000%20FCFA%29",
		},
		{
			name:    "literal plus survives as %2B",
			message: "a+b",
			want:    "https://wa.me/221778775858?text=a%2Bb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, whatsAppURL("221778775858", tt.message))
		})
	}
}
