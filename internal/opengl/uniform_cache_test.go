package opengl

import "testing"

func newCountingCache(known map[string]int32) (*UniformCache, *int) {
	calls := 0
	uc := NewUniformCache(7)
	uc.locate = func(program uint32, name string) int32 {
		calls++
		if program != 7 {
			return -1
		}
		if loc, ok := known[name]; ok {
			return loc
		}
		return -1
	}
	return uc, &calls
}

func TestUniformCacheLooksUpOnce(t *testing.T) {
	uc, calls := newCountingCache(map[string]int32{"_MainTex": 0, "_PrevMip": 3})

	for i := 0; i < 5; i++ {
		if loc := uc.GetLocation("_PrevMip"); loc != 3 {
			t.Fatalf("Expected location 3, got %d", loc)
		}
	}
	if *calls != 1 {
		t.Errorf("Expected 1 lookup, got %d", *calls)
	}
}

func TestUniformCacheRemembersMissing(t *testing.T) {
	uc, calls := newCountingCache(nil)

	if uc.Has("_LuminanceThreshold") || uc.Has("_LuminanceThreshold") {
		t.Error("Expected uniform to be missing")
	}
	if *calls != 1 {
		t.Errorf("Expected missing uniform to be cached, got %d lookups", *calls)
	}
}

func TestUniformCacheClear(t *testing.T) {
	uc, calls := newCountingCache(map[string]int32{"_MainTex": 0})

	uc.GetLocation("_MainTex")
	uc.Clear()
	uc.GetLocation("_MainTex")
	if *calls != 2 {
		t.Errorf("Expected lookup after Clear, got %d lookups", *calls)
	}
}
