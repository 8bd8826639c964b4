package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_CleanDocument(t *testing.T) {
	inTempDir(t)
	writeStory(t, "signup.story", signupStory)

	var out bytes.Buffer
	require.NoError(t, RunCheck(&out, "signup.story"))

	assert.Contains(t, out.String(), "ok")
	assert.Contains(t, out.String(), "4 steps recognized")
}

func TestCheck_WarningsDoNotFail(t *testing.T) {
	inTempDir(t)
	writeStory(t, "signup.story", `Story: Partner signup
Scenario: Fill the form
  When the user waits patiently
  And the user clicks "Submit"
`)

	var out bytes.Buffer
	require.NoError(t, RunCheck(&out, "signup.story"))

	assert.Contains(t, out.String(), "CNVW001")
	assert.Contains(t, out.String(), "When the user waits patiently")
}

func TestCheck_MalformedQuotingFails(t *testing.T) {
	inTempDir(t)
	writeStory(t, "signup.story", `Story: Partner signup
Scenario: Fill the form
  And the user enters "admin into "Email"
`)

	var out bytes.Buffer
	err := RunCheck(&out, "signup.story")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 malformed steps")
	assert.Contains(t, out.String(), "CNVE001")
}

func TestCheck_MissingFile(t *testing.T) {
	inTempDir(t)

	var out bytes.Buffer
	err := RunCheck(&out, "absent.story")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading absent.story")
}
