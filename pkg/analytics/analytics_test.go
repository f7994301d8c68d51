package analytics

import (
	"reflect"
	"testing"
)

func TestWordFrequency(t *testing.T) {
	a := &Analytics{}

	freq := a.WordFrequency("The network grows. Network parsing, network PARSING!")

	if got := freq["network"]; got != 3 {
		t.Errorf(`freq["network"] = %d, want 3`, got)
	}
	if got := freq["parsing"]; got != 2 {
		t.Errorf(`freq["parsing"] = %d, want 2`, got)
	}
	if _, ok := freq["the"]; ok {
		t.Error("stopword 'the' present in frequencies")
	}
}

func TestWordFrequencySkipsShortAndEmptyTokens(t *testing.T) {
	a := &Analytics{}

	freq := a.WordFrequency("go is ok !! -- analyzer")

	if _, ok := freq["go"]; ok {
		t.Error("two-letter token 'go' present in frequencies")
	}
	if got := freq["analyzer"]; got != 1 {
		t.Errorf(`freq["analyzer"] = %d, want 1`, got)
	}
}

func TestTopNWords(t *testing.T) {
	a := &Analytics{}

	got := a.TopNWords("alpha alpha alpha beta beta gamma", 2)
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopNWords() = %v, want %v", got, want)
	}
}

func TestTopNWordsStableTieBreak(t *testing.T) {
	a := &Analytics{}

	got := a.TopNWords("zebra apple zebra apple", 2)
	want := []string{"apple", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopNWords() = %v, want alphabetical tie-break %v", got, want)
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("The") {
		t.Error("IsStopword(The) = false, want true")
	}
	if IsStopword("analyzer") {
		t.Error("IsStopword(analyzer) = true, want false")
	}
}
