package main

import (
	"reflect"
	"testing"
)

func TestParseWrapperArgs(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		allowCrossFile bool
		want           wrapperArgs
		wantErr        bool
	}{
		{name: "empty", want: wrapperArgs{pass: []string{}}},
		{name: "separator only", args: []string{"--"}, want: wrapperArgs{pass: []string{}}},
		{name: "pass through after separator", args: []string{"--", "/nologo", "-v", "main.c"}, want: wrapperArgs{pass: []string{"/nologo", "-v", "main.c"}}},
		{name: "verbose before separator", args: []string{"-v", "--", "/c"}, want: wrapperArgs{verbose: true, pass: []string{"/c"}}},
		{name: "long verbose", args: []string{"--verbose", "--", "x"}, want: wrapperArgs{verbose: true, pass: []string{"x"}}},
		{name: "verbose false", args: []string{"--verbose=false", "--", "x"}, want: wrapperArgs{pass: []string{"x"}}},
		{name: "unknown before separator kept", args: []string{"/c", "--", "main.c"}, want: wrapperArgs{pass: []string{"/c", "main.c"}}},
		{name: "no separator", args: []string{"notepad.exe"}, want: wrapperArgs{pass: []string{"notepad.exe"}}},
		{name: "cross file", args: []string{"--add_cross_file", "--", "setup", "build"}, allowCrossFile: true, want: wrapperArgs{addCrossFile: true, pass: []string{"setup", "build"}}},
		{name: "cross file not allowed", args: []string{"--add_cross_file", "--", "setup"}, want: wrapperArgs{pass: []string{"--add_cross_file", "setup"}}},
		{name: "invalid bool", args: []string{"--verbose=maybe"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWrapperArgs(tt.args, tt.allowCrossFile)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
