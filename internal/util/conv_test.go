package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint
		wantErr bool
	}{
		{name: "普通数字", input: "42", want: 42},
		{name: "零合法", input: "0", want: 0},
		{name: "非数字报错", input: "abc", wantErr: true},
		{name: "负数报错", input: "-1", wantErr: true},
		{name: "空串报错", input: "", wantErr: true},
		{name: "小数报错", input: "1.5", wantErr: true},
		{name: "超出32位报错", input: "4294967296", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUint(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
