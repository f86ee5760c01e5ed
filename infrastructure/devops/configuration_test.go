package devops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDBEntries(t *testing.T) {
	entries, err := ParseDBEntries([]byte(`
- name: LMS
  host: db.internal
  username: lms
  password: secret
- name: reports
  host: reports.internal:3307
  username: ro
  password: pw
`))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	lms, ok := FindEntry(entries, "lms")
	require.True(t, ok)
	assert.Equal(t, "lms:secret@tcp(db.internal:3306)/lms_tokyo?parseTime=true", lms.GetDSN("lms_tokyo"))

	reports, ok := FindEntry(entries, "REPORTS")
	require.True(t, ok)
	assert.Equal(t, "ro:pw@tcp(reports.internal:3307)/?parseTime=true", reports.GetDSN(""))

	_, ok = FindEntry(entries, "missing")
	assert.False(t, ok)
}

func TestResolveDSNPrefersExplicit(t *testing.T) {
	dsn, err := ResolveDSN(context.Background(), "lms:pw@tcp(localhost:3306)/lms", "lms", "")
	require.NoError(t, err)
	assert.Equal(t, "lms:pw@tcp(localhost:3306)/lms", dsn)
}
