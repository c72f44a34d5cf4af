package collection_test

import (
	"reflect"
	"testing"

	"github.com/shashiranjanraj/vyapari/pkg/collection"
)

func TestMapAndFilter(t *testing.T) {
	nums := []int{1, 2, 3, 4}

	doubled := collection.Map(nums, func(n int) int { return n * 2 })
	if !reflect.DeepEqual(doubled, []int{2, 4, 6, 8}) {
		t.Errorf("Map = %v", doubled)
	}

	even := collection.Filter(nums, func(n int) bool { return n%2 == 0 })
	if !reflect.DeepEqual(even, []int{2, 4}) {
		t.Errorf("Filter = %v", even)
	}
}

func TestReduce(t *testing.T) {
	sum := collection.Reduce([]int{1, 2, 3}, 10, func(acc, n int) int { return acc + n })
	if sum != 16 {
		t.Errorf("Reduce = %d, want 16", sum)
	}
}

func TestGroupByAndKeyBy(t *testing.T) {
	type row struct {
		Day  string
		Val  int
		Name string
	}
	rows := []row{{"mon", 1, "a"}, {"mon", 2, "b"}, {"tue", 3, "c"}}

	grouped := collection.GroupBy(rows, func(r row) string { return r.Day })
	if len(grouped["mon"]) != 2 || len(grouped["tue"]) != 1 {
		t.Errorf("GroupBy = %v", grouped)
	}

	keyed := collection.KeyBy(rows, func(r row) string { return r.Name })
	if keyed["c"].Val != 3 {
		t.Errorf("KeyBy = %v", keyed)
	}
}

func TestFirstAndContains(t *testing.T) {
	nums := []int{5, 6, 7}

	v, ok := collection.First(nums, func(n int) bool { return n > 5 })
	if !ok || v != 6 {
		t.Errorf("First = %d, %v", v, ok)
	}

	if collection.Contains(nums, func(n int) bool { return n == 9 }) {
		t.Error("Contains false positive")
	}
}

func TestUnique(t *testing.T) {
	got := collection.Unique([]uint{3, 1, 3, 2, 1})
	if !reflect.DeepEqual(got, []uint{3, 1, 2}) {
		t.Errorf("Unique = %v", got)
	}
}
