package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loads   int
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loads++
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	a := &stubFeature{name: "economy", enabled: true}
	b := &stubFeature{name: "rewards", enabled: false}
	c := &stubFeature{name: "shop", enabled: true}

	m := NewManager()
	m.Register(a)
	m.Register(b)
	m.Register(c)

	assert.NoError(t, m.LoadAll(fiber.New()))
	assert.Equal(t, 1, a.loads)
	assert.Equal(t, 0, b.loads)
	assert.Equal(t, 1, c.loads)
	assert.Equal(t, []string{"economy", "shop"}, m.Loaded())
}

func TestManager_LoadAllFailure(t *testing.T) {
	m := NewManager()
	m.Register(&stubFeature{name: "shop", enabled: true, err: errors.New("boom")})

	err := m.LoadAll(fiber.New())
	assert.EqualError(t, err, "failed to load feature shop: boom")
	assert.Empty(t, m.Loaded())
}

func TestManager_Duplicate(t *testing.T) {
	m := NewManager()
	m.Register(&stubFeature{name: "shop", enabled: true})
	m.Register(&stubFeature{name: "shop", enabled: true})

	assert.EqualError(t, m.LoadAll(fiber.New()), "feature shop registered twice")
}
