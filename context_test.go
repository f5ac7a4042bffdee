// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpretty

import "testing"

func TestScanState(t *testing.T) {
	var st scanState
	if st.depth() != 0 || st.inArray() {
		t.Fatalf("Zero state: depth %d, inArray %v", st.depth(), st.inArray())
	}
	if st.pop(false) || st.pop(true) {
		t.Fatal("Pop of an empty state succeeded")
	}

	st.push(false) // {
	if !st.wantsKey() || !st.canClose() || st.wantsValue() {
		t.Errorf("After open object: want %v", st.want)
	}
	st.want = wantValue
	st.push(true) // [
	if d := st.depth(); d != 2 || !st.inArray() {
		t.Errorf("After open array: depth %d, inArray %v", d, st.inArray())
	}
	st.endValue()
	st.separate()
	if st.want != wantValue || !st.pending {
		t.Errorf("After separator in array: want %v, pending %v", st.want, st.pending)
	}

	if st.pop(false) {
		t.Error("Pop of array as object succeeded")
	}
	if !st.pop(true) {
		t.Error("Pop of array failed")
	}
	if st.inArray() {
		t.Error("After closing array: still in array")
	}
	st.endValue()
	st.separate()
	if st.want != wantKey {
		t.Errorf("After separator in object: want %v", st.want)
	}

	if !st.pop(false) {
		t.Error("Pop of object failed")
	}
	st.endValue()
	if st.depth() != 0 || st.docs != 1 || st.want != wantDoc {
		t.Errorf("After closing object: depth %d, docs %d, want %v", st.depth(), st.docs, st.want)
	}
}
