package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Metro HVAC", StripHTML("<b>Metro</b> HVAC"))
	assert.Equal(t, "alert(1)", StripHTML("&lt;script&gt;alert(1)&lt;/script&gt;"))
	assert.Equal(t, "Tom & Jerry's", StripHTML("Tom &amp; Jerry&#39;s"))
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "Dana Reyes", Placeholder("  Dana\n\tReyes ", 0))
	assert.Equal(t, "Café", Placeholder("Café Lumière", 4))
	assert.Equal(t, "Luca", Placeholder("<i>Luca</i>", 60))
	assert.Empty(t, Placeholder("<br/>", 60))
}
