package render

import (
	"fmt"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

var minifier = sync.OnceValue(func() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	return m
})

func minifyHTML(b []byte) ([]byte, error) {
	b, err := minifier().Bytes("text/html", b)
	if err != nil {
		return nil, fmt.Errorf("minifying report: %v", err)
	}
	return b, nil
}
