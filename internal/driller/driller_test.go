// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package driller

import (
	"embed"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// drillerTestCase is one entry of testdata/driller_cases.yaml.
type drillerTestCase struct {
	Name        string                 `yaml:"name"`
	JSON        map[string]interface{} `yaml:"json"`
	Path        string                 `yaml:"path"`
	ExpectedStr string                 `yaml:"expectedStr"`
	IsNil       bool                   `yaml:"isNil"`
	IsArray     bool                   `yaml:"isArray"`
}

func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestDriller(t *testing.T) {
	var cases []drillerTestCase
	require.NoError(t, loadTestData("driller_cases.yaml", &cases))

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			doc, err := json.Marshal(tc.JSON)
			require.NoError(t, err)
			got := Driller(string(doc), tc.Path)

			switch {
			case tc.IsNil:
				assert.True(t, !got.Exists() || got.Type == gjson.Null, "unexpected value %v", got.Value())
			case tc.IsArray:
				require.True(t, got.Exists())
				assert.True(t, got.IsArray(), "want array, got %T", got.Value())
			default:
				require.True(t, got.Exists())
				assert.Equal(t, tc.ExpectedStr, got.String())
			}
		})
	}
}

func TestDrill_ParsedItem(t *testing.T) {
	item := gjson.Parse(`{"ResourceShareArn":"arn:aws:ram:us-east-1:1:resource-share/x","Tags":[{"Key":"Name","Value":"shared"}]}`)

	assert.Equal(t, "shared", Drill(item, "Tags.Name").String())
	assert.Equal(t, "arn:aws:ram:us-east-1:1:resource-share/x", Drill(item, "ResourceShareArn").String())
}
