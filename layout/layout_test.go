package layout_test

import (
	"testing"

	"github.com/jrsteele09/tollway-portal/layout"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	tests := []struct {
		path string
		want layout.Visibility
	}{
		{path: "/", want: layout.Visibility{ShowNavbar: true, ShowFooter: false, Hero: true}},
		{path: "/login", want: layout.Visibility{}},
		{path: "/register", want: layout.Visibility{}},
		{path: "/dashboard", want: layout.Visibility{ShowNavbar: true, ShowFooter: true}},
		{path: "/features/toll", want: layout.Visibility{ShowNavbar: true, ShowFooter: true}},
		{path: "/login/", want: layout.Visibility{ShowNavbar: true, ShowFooter: true}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, layout.For(tt.path))
		})
	}
}
