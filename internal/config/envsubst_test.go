package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteEnvVars_Simple(t *testing.T) {
	t.Setenv("TEST_VAR_SIMPLE", "hello")

	content, missing := substituteEnvVars("value = ${TEST_VAR_SIMPLE}")
	assert.Equal(t, "value = hello", content)
	assert.Empty(t, missing)
}

func TestSubstituteEnvVars_SetButEmpty(t *testing.T) {
	t.Setenv("TEST_VAR_EMPTY", "")

	content, missing := substituteEnvVars(`key = "${TEST_VAR_EMPTY}"`)
	assert.Equal(t, `key = ""`, content)
	assert.Empty(t, missing)
}

func TestSubstituteEnvVars_Missing(t *testing.T) {
	// t.Setenv cannot truly unset, so use a name that is never set
	content, missing := substituteEnvVars("value = ${MOVIEDB_TEST_NONEXISTENT_VAR_12345}")
	assert.Equal(t, "value = ${MOVIEDB_TEST_NONEXISTENT_VAR_12345}", content)
	assert.Equal(t, []string{"MOVIEDB_TEST_NONEXISTENT_VAR_12345"}, missing)
}

func TestSubstituteEnvVars_Default(t *testing.T) {
	// Empty counts as unset for :-
	t.Setenv("UNSET_VAR_DEFAULT", "")

	content, missing := substituteEnvVars("value = ${UNSET_VAR_DEFAULT:-default_value}")
	assert.Equal(t, "value = default_value", content)
	assert.Empty(t, missing)
}

func TestSubstituteEnvVars_EmptyDefault(t *testing.T) {
	content, missing := substituteEnvVars(`api_key = "${MOVIEDB_TEST_NONEXISTENT_KEY:-}"`)
	assert.Equal(t, `api_key = ""`, content)
	assert.Empty(t, missing)
}

func TestSubstituteEnvVars_DefaultOverriddenByEnv(t *testing.T) {
	t.Setenv("SET_VAR_OVERRIDE", "from_env")

	content, missing := substituteEnvVars("value = ${SET_VAR_OVERRIDE:-default}")
	assert.Equal(t, "value = from_env", content)
	assert.Empty(t, missing)
}

func TestSubstituteEnvVars_RequiredError(t *testing.T) {
	t.Setenv("REQUIRED_VAR_TEST", "")

	content, missing := substituteEnvVars("value = ${REQUIRED_VAR_TEST:?API key is required}")
	assert.Equal(t, "value = ${REQUIRED_VAR_TEST:?API key is required}", content)
	assert.Equal(t, []string{"REQUIRED_VAR_TEST: API key is required"}, missing)
}

func TestSubstituteEnvVars_RequiredSet(t *testing.T) {
	t.Setenv("REQUIRED_VAR_SET", "abc")

	content, missing := substituteEnvVars("value = ${REQUIRED_VAR_SET:?API key is required}")
	assert.Equal(t, "value = abc", content)
	assert.Empty(t, missing)
}

func TestSubstituteEnvVars_Multiple(t *testing.T) {
	t.Setenv("VAR1_MULTI", "one")
	t.Setenv("VAR3_MULTI", "")

	content, missing := substituteEnvVars("${VAR1_MULTI} ${MOVIEDB_VAR2_NONEXISTENT} ${VAR3_MULTI:-three}")
	assert.Equal(t, "one ${MOVIEDB_VAR2_NONEXISTENT} three", content)
	assert.Equal(t, []string{"MOVIEDB_VAR2_NONEXISTENT"}, missing)
}

func TestSubstituteEnvVars_IgnoresNonReferences(t *testing.T) {
	content, missing := substituteEnvVars(`price = "$5" other = "${}"`)
	assert.Equal(t, `price = "$5" other = "${}"`, content)
	assert.Empty(t, missing)
}
