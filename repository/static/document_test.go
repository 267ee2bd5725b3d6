package static

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/petbuddy/domain"
)

func TestDefaultDocument(t *testing.T) {
	doc, err := Default()
	require.NoError(t, err)

	require.Len(t, doc.Employees, 6)
	require.Len(t, doc.Plans, 3)

	ids := make([]int, 0, len(doc.Employees))
	for _, emp := range doc.Employees {
		ids = append(ids, emp.ID)
	}
	assert.Equal(t, []int{101, 102, 103, 104, 105, 106}, ids)

	alex := doc.Employees[2]
	assert.Equal(t, "Alex Ray", alex.Name)
	assert.Equal(t, domain.GenderOther, alex.Gender)
	assert.Equal(t, domain.StatusIntern, alex.Status)
	assert.Equal(t, "Digital Grooming Intern", alex.Role)
	assert.Equal(t, domain.StatusOnLeave, doc.Employees[3].Status)

	pro := doc.Plans[1]
	assert.Equal(t, "Pro Pal", pro.Name)
	assert.Equal(t, 19, pro.Price)
	assert.Equal(t, domain.ThemeCosmic, pro.Theme)
	assert.True(t, pro.Highlight)
	assert.Len(t, pro.Features, 5)
	assert.False(t, doc.Plans[0].Highlight)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "unknown gender",
			body: "employees:\n  - id: 1\n    name: A\n    gender: Robot\n    status: Active\n",
		},
		{
			name: "unknown status",
			body: "employees:\n  - id: 1\n    name: A\n    gender: Male\n    status: Retired\n",
		},
		{
			name: "unknown theme",
			body: "plans:\n  - name: P\n    theme: Desert\n",
		},
		{
			name: "duplicate id",
			body: "employees:\n  - id: 1\n    name: A\n  - id: 1\n    name: B\n",
		},
		{
			name: "malformed yaml",
			body: "employees: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	body := "employees:\n  - id: 7\n    name: Solo\n    gender: Other\n    status: Active\n    role: Tester\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Employees, 1)
	assert.Equal(t, "Solo", doc.Employees[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	doc, err = Load("")
	require.NoError(t, err)
	assert.Len(t, doc.Employees, 6)
}

func TestCatalogRepositoryReturnsCopies(t *testing.T) {
	doc, err := Default()
	require.NoError(t, err)
	repo := NewCatalogRepository(doc)
	ctx := context.Background()

	employees, err := repo.Employees(ctx)
	require.NoError(t, err)
	employees[0].Name = "changed"

	plans, err := repo.Plans(ctx)
	require.NoError(t, err)
	plans[0].Features[0] = "changed"

	again, err := repo.Employees(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Smith", again[0].Name)

	plansAgain, err := repo.Plans(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Text Chat Interface", plansAgain[0].Features[0])
}

func TestCatalogRepositoryHonoursCancellation(t *testing.T) {
	repo := NewCatalogRepository(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Employees(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.Plans(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
