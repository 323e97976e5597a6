package testutil

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor_IsWellFormed(t *testing.T) {
	doc := Descriptor([]File{Verilog("a&b.v", 1), UCF("top.ucf", 2)}, map[string]string{"Device": "xc6slx45"})

	var v struct {
		XMLName xml.Name
	}
	require.NoError(t, xml.Unmarshal([]byte(doc), &v))
	assert.Equal(t, "project", v.XMLName.Local)
	assert.Contains(t, doc, `xil_pn:name="a&amp;b.v"`)
}
