package problems

// Catalog returns the built-in problem set. It is the fallback when no
// remote source is configured or the remote source fails.
func Catalog() []Problem {
	return []Problem{
		{
			ID:          "two-sum",
			Title:       "Two Sum",
			Difficulty:  Easy,
			Category:    "Algorithms",
			Topics:      []string{"arrays", "hash-maps"},
			Description: "Given a list of integers and a target, print the indices of the two numbers that add up to the target.",
			StarterCode: "def two_sum(nums, target):\n    pass\n",
			TestCases: []TestCase{
				{Input: "2 7 11 15\n9", Expected: "0 1"},
				{Input: "3 2 4\n6", Expected: "1 2"},
			},
		},
		{
			ID:          "reverse-string",
			Title:       "Reverse String",
			Difficulty:  Easy,
			Category:    "Programming Fundamentals",
			Topics:      []string{"strings"},
			Description: "Read a string and print it reversed.",
			StarterCode: "def reverse(s):\n    pass\n",
			TestCases: []TestCase{
				{Input: "hello", Expected: "olleh"},
				{Input: "a", Expected: "a"},
			},
		},
		{
			ID:          "fizzbuzz",
			Title:       "FizzBuzz",
			Difficulty:  Easy,
			Category:    "Programming Fundamentals",
			Topics:      []string{"loops", "conditionals"},
			Description: "Print the numbers 1 to n, replacing multiples of 3 with Fizz, multiples of 5 with Buzz, and multiples of both with FizzBuzz.",
			TestCases: []TestCase{
				{Input: "5", Expected: "1\n2\nFizz\n4\nBuzz"},
			},
		},
		{
			ID:          "palindrome-check",
			Title:       "Palindrome Check",
			Difficulty:  Easy,
			Category:    "Programming Fundamentals",
			Topics:      []string{"strings"},
			Description: "Print true if the input string is a palindrome, false otherwise.",
			TestCases: []TestCase{
				{Input: "racecar", Expected: "true"},
				{Input: "rocket", Expected: "false"},
			},
		},
		{
			ID:          "max-subarray",
			Title:       "Maximum Subarray",
			Difficulty:  Easy,
			Category:    "Algorithms",
			Topics:      []string{"arrays", "dynamic-programming"},
			Description: "Print the largest sum of any contiguous subarray.",
			TestCases: []TestCase{
				{Input: "-2 1 -3 4 -1 2 1 -5 4", Expected: "6"},
			},
		},
		{
			ID:          "fibonacci",
			Title:       "Fibonacci Number",
			Difficulty:  Easy,
			Category:    "Mathematics",
			Topics:      []string{"recursion", "number-theory"},
			Description: "Print the nth Fibonacci number (0-indexed).",
			TestCases: []TestCase{
				{Input: "10", Expected: "55"},
			},
		},
		{
			ID:          "valid-parentheses",
			Title:       "Valid Parentheses",
			Difficulty:  Medium,
			Category:    "Data Structures",
			Topics:      []string{"stacks"},
			Description: "Print true if every bracket in the input string is closed in the correct order.",
			TestCases: []TestCase{
				{Input: "([{}])", Expected: "true"},
				{Input: "([)]", Expected: "false"},
			},
		},
		{
			ID:          "binary-search",
			Title:       "Binary Search",
			Difficulty:  Medium,
			Category:    "Algorithms",
			Topics:      []string{"searching", "arrays"},
			Description: "Given a sorted list and a target, print the index of the target or -1.",
			TestCases: []TestCase{
				{Input: "1 3 5 7 9\n7", Expected: "3"},
				{Input: "1 3 5 7 9\n4", Expected: "-1"},
			},
		},
		{
			ID:          "merge-intervals",
			Title:       "Merge Intervals",
			Difficulty:  Medium,
			Category:    "Algorithms",
			Topics:      []string{"sorting", "arrays"},
			Description: "Merge all overlapping intervals and print the result.",
			TestCases: []TestCase{
				{Input: "1,3 2,6 8,10 15,18", Expected: "1,6 8,10 15,18"},
			},
		},
		{
			ID:          "linked-list-cycle",
			Title:       "Linked List Cycle",
			Difficulty:  Medium,
			Category:    "Data Structures",
			Topics:      []string{"linked-lists", "two-pointers"},
			Description: "Given a linked list described by next-pointers, print true if it contains a cycle.",
			TestCases: []TestCase{
				{Input: "3 2 0 -4\n1", Expected: "true"},
				{Input: "1 2\n-1", Expected: "false"},
			},
		},
		{
			ID:          "coin-change",
			Title:       "Coin Change",
			Difficulty:  Medium,
			Category:    "Algorithms",
			Topics:      []string{"dynamic-programming"},
			Description: "Print the fewest coins needed to make the amount, or -1 if impossible.",
			TestCases: []TestCase{
				{Input: "1 2 5\n11", Expected: "3"},
				{Input: "2\n3", Expected: "-1"},
			},
		},
		{
			ID:          "permutations",
			Title:       "Permutations",
			Difficulty:  Medium,
			Category:    "Mathematics",
			Topics:      []string{"combinatorics", "recursion"},
			Description: "Print all permutations of the input list in lexicographic order, one per line.",
			TestCases: []TestCase{
				{Input: "1 2 3", Expected: "1 2 3\n1 3 2\n2 1 3\n2 3 1\n3 1 2\n3 2 1"},
			},
		},
		{
			ID:          "word-ladder",
			Title:       "Word Ladder",
			Difficulty:  Hard,
			Category:    "Algorithms",
			Topics:      []string{"graphs", "bfs"},
			Description: "Print the length of the shortest transformation sequence from the start word to the end word, changing one letter at a time through the dictionary.",
			TestCases: []TestCase{
				{Input: "hit cog\nhot dot dog lot log cog", Expected: "5"},
			},
		},
		{
			ID:          "median-sorted-arrays",
			Title:       "Median of Two Sorted Arrays",
			Difficulty:  Hard,
			Category:    "Algorithms",
			Topics:      []string{"divide-and-conquer", "arrays"},
			Description: "Print the median of the two sorted input lists in O(log(m+n)) time.",
			TestCases: []TestCase{
				{Input: "1 3\n2", Expected: "2.0"},
				{Input: "1 2\n3 4", Expected: "2.5"},
			},
		},
		{
			ID:          "lru-cache",
			Title:       "LRU Cache",
			Difficulty:  Hard,
			Category:    "System Design",
			Topics:      []string{"hash-maps", "linked-lists", "design"},
			Description: "Implement an LRU cache and print the result of each GET operation in the input sequence.",
			TestCases: []TestCase{
				{Input: "2\nPUT 1 1\nPUT 2 2\nGET 1\nPUT 3 3\nGET 2", Expected: "1\n-1"},
			},
		},
		{
			ID:          "trapping-rain-water",
			Title:       "Trapping Rain Water",
			Difficulty:  Hard,
			Category:    "Algorithms",
			Topics:      []string{"two-pointers", "arrays"},
			Description: "Given an elevation map, print how much water it can trap after raining.",
			TestCases: []TestCase{
				{Input: "0 1 0 2 1 0 1 3 2 1 2 1", Expected: "6"},
			},
		},
	}
}
