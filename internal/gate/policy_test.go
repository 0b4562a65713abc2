package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide_DefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		path   string
		locked bool
		want   Action
		class  Class
	}{
		{"/application/identity", true, ActionRedirect, ClassRestricted},
		{"/application/identity", false, ActionAllow, ClassRestricted},
		{"/application/eligibility/start", true, ActionAllow, ClassAlwaysAllowed},
		{"/purgatory/", true, ActionAllow, ClassAlwaysAllowed},
		{"/account/settings", true, ActionAllow, ClassUnrestricted},
		{"/application/residences?step=2", true, ActionRedirect, ClassRestricted},
		// Prefix match: the restricted segment elsewhere in the path does not count.
		{"/help/application/faq", true, ActionAllow, ClassUnrestricted},
		{"/application", true, ActionAllow, ClassUnrestricted},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			d := p.Decide(tt.path, tt.locked)
			assert.Equal(t, tt.want, d.Action)
			assert.Equal(t, tt.class, d.Class)
			if tt.want == ActionRedirect {
				assert.Equal(t, "/purgatory/", d.RedirectTo)
			} else {
				assert.Empty(t, d.RedirectTo)
			}
		})
	}
}

func TestNewPolicy(t *testing.T) {
	p := NewPolicy([]string{"application/", " /review/ "}, []string{"/purgatory/", "/purgatory/"}, "")
	assert.Equal(t, []string{"/application/", "/review/"}, p.Restricted)
	assert.Equal(t, []string{"/purgatory/"}, p.AlwaysAllowed)
	assert.Equal(t, "/purgatory/", p.RedirectTo)

	assert.Equal(t, ClassRestricted, p.Classify("/review/1"))
}
