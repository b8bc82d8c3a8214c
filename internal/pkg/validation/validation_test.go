package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	v := Violations{}
	Required("phone", "  ", v)
	MinLength("firstName", "A", 2, v)
	MinLength("lastName", "Ébo", 3, v)
	Email("email", "not-an-email", v)
	PositiveInt("premium", 0, v)
	OneOf("type", "BOAT", []string{"AUTO", "SANTE"}, v)

	assert.Equal(t, "required", v["phone"])
	assert.Equal(t, "min_length=2", v["firstName"])
	assert.NotContains(t, v, "lastName")
	assert.Equal(t, "invalid_email", v["email"])
	assert.Equal(t, "must_be_positive", v["premium"])
	assert.Equal(t, "must_be_one_of=AUTO,SANTE", v["type"])
}

func TestViolationsError(t *testing.T) {
	v := Violations{"name": "min_length=3", "code": "min_length=2"}
	assert.False(t, v.Empty())
	assert.Equal(t, "code: min_length=2; name: min_length=3", v.Error())

	Email("email", "ada@example.com", v)
	assert.NotContains(t, v, "email")
	assert.True(t, Violations{}.Empty())
}
