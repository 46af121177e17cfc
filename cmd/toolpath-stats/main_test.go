package main

import (
	"fmt"
	"reflect"
	"testing"
)

func TestParseTools(t *testing.T) {
	tests := []struct {
		in      string
		want    []float32
		wantErr bool
	}{
		{in: "1", want: []float32{1}},
		{in: "4, 2,0.5,", want: []float32{4, 2, 0.5}},
		{in: "", wantErr: true},
		{in: "1,big", wantErr: true},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %q", i, tt.in), func(t *testing.T) {
			got, err := parseTools(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTools err = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseTools = %v, want %v", got, tt.want)
			}
		})
	}
}
