package selftest

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gostonefire/hashmap"
	"github.com/gostonefire/hashmap/avl"
	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/linkedlist"
	"go.uber.org/zap"
)

// Suites - Returns the LinkedList, Chaining::HashMap, Probing::HashMap and AVL suites
//   - conf holds the hash map parameters
//   - logger is handed to every hash map created, nil disables logging
func Suites(conf Config, logger *zap.Logger) (suites []Suite, err error) {
	err = conf.Validate()
	if err != nil {
		return
	}

	suites = []Suite{
		LinkedListSuite(),
		HashMapSuite("Chaining::HashMap", crt.SeparateChaining, conf, logger),
		HashMapSuite("Probing::HashMap", crt.LinearProbing, conf, logger),
		AVLSuite(),
	}

	return
}

// LinkedListSuite - Checks the linked list used as bucket by separate chaining
func LinkedListSuite() Suite {
	newList := func() *linkedlist.LinkedList[int, string] {
		list := linkedlist.New[int, string]()
		list.Insert(1, "one")
		list.Insert(2, "two")
		list.Insert(3, "three")
		return list
	}

	return Suite{
		Name: "LinkedList",
		Cases: []Case{
			{Name: "Insert and Find Test", Run: func(io.Writer) error {
				list := newList()
				for k, v := range map[int]string{1: "one", 2: "two", 3: "three"} {
					if err := expectNode(list, k, v); err != nil {
						return err
					}
				}
				if _, found := list.Find(4); found {
					return fmt.Errorf("found key 4 which was never inserted")
				}
				return nil
			}},
			{Name: "Delete by Key Test", Run: func(io.Writer) error {
				list := newList()
				if !list.DeleteKey(2) {
					return fmt.Errorf("key 2 not deleted")
				}
				if _, found := list.Find(2); found {
					return fmt.Errorf("key 2 still found after delete")
				}
				if list.DeleteKey(4) {
					return fmt.Errorf("deleted key 4 which was never inserted")
				}
				return nil
			}},
			{Name: "Delete by Value Test", Run: func(io.Writer) error {
				list := newList()
				if !linkedlist.DeleteValue(list, "two") {
					return fmt.Errorf("value two not deleted")
				}
				if _, found := list.Find(2); found {
					return fmt.Errorf("key 2 still found after deleting its value")
				}
				if linkedlist.DeleteValue(list, "four") {
					return fmt.Errorf("deleted value four which was never inserted")
				}
				return nil
			}},
			{Name: "Insert Duplicates Test", Run: func(io.Writer) error {
				list := linkedlist.New[int, string]()
				list.Insert(1, "one")
				list.Insert(1, "two")
				if list.Len() != 1 {
					return fmt.Errorf("expected 1 node, got %d", list.Len())
				}
				return expectNode(list, 1, "two")
			}},
			{Name: "Empty List Test", Run: func(io.Writer) error {
				list := linkedlist.New[int, string]()
				if list.DeleteKey(1) {
					return fmt.Errorf("deleted key 1 from an empty list")
				}
				if linkedlist.DeleteValue(list, "test") {
					return fmt.Errorf("deleted a value from an empty list")
				}
				return nil
			}},
		},
	}
}

// HashMapSuite - Checks a hash map using the given collision resolution technique
//   - name is the suite name
//   - technique is one of crt.SeparateChaining or crt.LinearProbing
//   - conf holds the hash map parameters
//   - logger is handed to every hash map created, nil disables logging
func HashMapSuite(name string, technique int, conf Config, logger *zap.Logger) Suite {
	newMap := func(records int) (hm *hashmap.HashMap[int, string], info hashmap.HashMapInfo, err error) {
		hashFunc, err := conf.hashFunc()
		if err != nil {
			return
		}
		threshold := conf.ProbingLoadFactor
		if technique == crt.SeparateChaining {
			threshold = conf.ChainingLoadFactor
		}
		opts := []hashmap.Option{hashmap.WithLoadFactorThreshold(threshold)}
		if logger != nil {
			opts = append(opts, hashmap.WithLogger(logger.With(zap.String("suite", name))))
		}

		hm, info, err = hashmap.NewHashMap[int, string](technique, conf.InitialCapacity, hashFunc, opts...)
		if err != nil {
			return
		}
		for i, v := range []string{"one", "two", "three"}[:records] {
			if err = hm.Set(i+1, v); err != nil {
				return
			}
		}
		return
	}

	return Suite{
		Name: name,
		Cases: []Case{
			{Name: "Testing Insert and Find", Run: func(io.Writer) error {
				hm, _, err := newMap(3)
				if err != nil {
					return err
				}
				for k, v := range map[int]string{1: "one", 2: "two", 3: "three"} {
					if err = expectValue(hm, k, v); err != nil {
						return err
					}
				}
				return expectMissing(hm, 4)
			}},
			{Name: "Testing Delete", Run: func(io.Writer) error {
				hm, _, err := newMap(3)
				if err != nil {
					return err
				}
				if !hm.Delete(2) {
					return fmt.Errorf("key 2 not deleted")
				}
				if err = expectMissing(hm, 2); err != nil {
					return err
				}
				if hm.Delete(4) {
					return fmt.Errorf("deleted key 4 which was never inserted")
				}
				for _, k := range []int{1, 3} {
					if !hm.Contains(k) {
						return fmt.Errorf("key %d lost after deleting key 2", k)
					}
				}
				return nil
			}},
			{Name: "Testing Duplicate Inserts", Run: func(io.Writer) error {
				hm, _, err := newMap(1)
				if err != nil {
					return err
				}
				if err = hm.Set(1, "first"); err != nil {
					return err
				}
				if hm.Len() != 1 {
					return fmt.Errorf("expected 1 record after updating key 1, got %d", hm.Len())
				}
				return expectValue(hm, 1, "first")
			}},
			{Name: "Testing Reset", Run: func(io.Writer) error {
				hm, _, err := newMap(3)
				if err != nil {
					return err
				}
				if err = hm.Reset(); err != nil {
					return err
				}
				for _, k := range []int{1, 2, 3} {
					if err = expectMissing(hm, k); err != nil {
						return err
					}
				}
				return nil
			}},
			{Name: "Testing Size", Run: func(io.Writer) error {
				hm, info, err := newMap(0)
				if err != nil {
					return err
				}
				capacity := info.NumberOfBuckets

				// Fill up to and including the record that pushes the load factor above the threshold
				var n int
				for n = 1; ; n++ {
					if err = hm.Set(n, strconv.Itoa(n)); err != nil {
						return err
					}
					if float64(n)/float64(capacity) > info.LoadFactorThreshold {
						break
					}
					if hm.Capacity() != capacity || hm.Len() != int64(n) {
						return fmt.Errorf("expected capacity %d and %d records, got %d and %d", capacity, n, hm.Capacity(), hm.Len())
					}
				}

				if hm.Capacity() != capacity*2 || hm.Len() != int64(n) {
					return fmt.Errorf("expected capacity %d and %d records after growing, got %d and %d", capacity*2, n, hm.Capacity(), hm.Len())
				}
				for k := 1; k <= n; k++ {
					if err = expectValue(hm, k, strconv.Itoa(k)); err != nil {
						return err
					}
				}
				return nil
			}},
		},
	}
}

// AVLSuite - Builds a three node tree for each of the four rotation cases, prints it and checks its shape
func AVLSuite() Suite {
	rotation := func(values [3]int, root, left, right int, want avl.RotationStats) func(out io.Writer) error {
		return func(out io.Writer) (err error) {
			tree := avl.New[int]()
			for _, v := range values {
				tree.Insert(v)
			}
			if err = tree.Print(out); err != nil {
				return
			}

			r := tree.Root()
			if r.Value() != root || r.Left() == nil || r.Left().Value() != left || r.Right() == nil || r.Right().Value() != right {
				return fmt.Errorf("expected root %d with children %d and %d", root, left, right)
			}
			if got := tree.Rotations(); got != want {
				return fmt.Errorf("expected rotations %+v, got %+v", want, got)
			}
			return tree.Validate()
		}
	}

	return Suite{
		Name: "AVL",
		Demo: true,
		Cases: []Case{
			{Name: "LL Rotations >> (20, 10, 5)", Run: rotation([3]int{20, 10, 5}, 10, 5, 20, avl.RotationStats{Right: 1})},
			{Name: "RR Rotations >> (20, 30, 40)", Run: rotation([3]int{20, 30, 40}, 30, 20, 40, avl.RotationStats{Left: 1})},
			{Name: "LR Rotations >> (20, 10, 15)", Run: rotation([3]int{20, 10, 15}, 15, 10, 20, avl.RotationStats{LeftRight: 1})},
			{Name: "RL Rotations >> (20, 30, 25)", Run: rotation([3]int{20, 30, 25}, 25, 20, 30, avl.RotationStats{RightLeft: 1})},
		},
	}
}

func expectNode(list *linkedlist.LinkedList[int, string], key int, value string) error {
	node, found := list.Find(key)
	if !found {
		return fmt.Errorf("key %d not found", key)
	}
	if node.Value != value {
		return fmt.Errorf("expected %q for key %d, got %q", value, key, node.Value)
	}
	return nil
}

func expectValue(hm *hashmap.HashMap[int, string], key int, value string) error {
	got, err := hm.Get(key)
	if err != nil {
		return fmt.Errorf("get key %d: %w", key, err)
	}
	if got != value {
		return fmt.Errorf("expected %q for key %d, got %q", value, key, got)
	}
	return nil
}

func expectMissing(hm *hashmap.HashMap[int, string], key int) error {
	_, err := hm.Get(key)
	if err == nil {
		return fmt.Errorf("key %d found but should be missing", key)
	}
	if !errors.Is(err, crt.NoRecordFound{}) {
		return fmt.Errorf("get key %d: %w", key, err)
	}
	return nil
}
