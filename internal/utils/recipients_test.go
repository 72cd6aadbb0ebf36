package utils

import (
	"reflect"
	"testing"
)

func TestJoinNames(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{}, ""},
		{[]string{"alice"}, "alice"},
		{[]string{"alice", "bob"}, "alice, bob"},
		{[]string{" alice ", "", "  ", "bob"}, "alice, bob"},
	}
	for _, c := range cases {
		if got := JoinNames(c.in); got != c.want {
			t.Errorf("JoinNames(%v) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestSplitNames(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"alice", []string{"alice"}},
		{"alice, bob", []string{"alice", "bob"}},
		{"alice,,  bob , ", []string{"alice", "bob"}},
	}
	for _, c := range cases {
		if got := SplitNames(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitNames(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	in := []string{"alice", "bob", "carol"}
	if got := SplitNames(JoinNames(in)); !reflect.DeepEqual(got, in) {
		t.Errorf("round trip = %v; want %v", got, in)
	}
}
