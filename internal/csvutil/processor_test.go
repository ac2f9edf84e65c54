package csvutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apps.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestProcessCSV(t *testing.T) {
	path := writeCSV(t, "Name, Score\nPortal,95\nDota 2,90\n")

	type row struct {
		name  string
		score string
	}
	rows, err := ProcessCSV(path, func(record []string, header Header) (row, error) {
		return row{name: record[header.Index("name")], score: record[header.Index("score")]}, nil
	}, ProcessorOptions{})

	require.NoError(t, err)
	assert.Equal(t, []row{{"Portal", "95"}, {"Dota 2", "90"}}, rows)
}

func TestProcessCSV_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := ProcessCSV(path, func([]string, Header) (int, error) { return 0, nil }, ProcessorOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestProcessCSV_FileNotFound(t *testing.T) {
	_, err := ProcessCSV(filepath.Join(t.TempDir(), "nope.csv"), func([]string, Header) (int, error) { return 0, nil }, ProcessorOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open CSV file")
}

func TestReadAppIDs(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		skipInvalid bool
		want        []int
		wantErr     string
	}{
		{
			name:    "appid column",
			content: "name,appid\nPortal,400\nTF2,440\n",
			want:    []int{400, 440},
		},
		{
			name:    "falls back to first column",
			content: "id,title\n570,Dota 2\n620,Portal 2\n",
			want:    []int{570, 620},
		},
		{
			name:    "steam_appid alias",
			content: "steam_appid\n10\n",
			want:    []int{10},
		},
		{
			name:    "invalid row fails",
			content: "appid\n10\nabc\n",
			wantErr: "invalid record on line 3",
		},
		{
			name:        "invalid rows skipped",
			content:     "appid\n10\nabc\n0\n20\n",
			skipInvalid: true,
			want:        []int{10, 20},
		},
		{
			name:    "short row",
			content: "name,appid\nPortal\n",
			wantErr: "missing app id column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := ReadAppIDs(writeCSV(t, tt.content), tt.skipInvalid)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), tt.wantErr), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}
