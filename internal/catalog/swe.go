package catalog

import "github.com/terra-clan/interview-coach/internal/models"

// sweQuestions is the software engineering set. It also backs direct lookup by id.
func sweQuestions() []models.Question {
	return []models.Question{
		q("0", "Two Sum", models.DifficultyEasy,
			"Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target. You may assume that each input would have exactly one solution, and you may not use the same element twice.",
			tags(models.ConceptArrays, models.ConceptHashTable),
			"Try using a hash map to store numbers you've already seen.",
			"For each number, check if (target - number) exists in your map.",
			"One pass through the array is enough — store each number's index as you go.",
			"O(n)"),

		q("1", "Valid Parentheses", models.DifficultyEasy,
			"Given a string s containing just the characters '(', ')', '{', '}', '[' and ']', determine if the input string is valid. An input string is valid if open brackets are closed by the same type of brackets and in the correct order.",
			tags(models.ConceptStack, models.ConceptStrings),
			"Think about what data structure lets you match the most recent opening bracket first.",
			"Push opening brackets onto a stack; when you see a closing bracket, check the top.",
			"If the stack is empty when you encounter a closing bracket, or mismatched, return false.",
			"O(n)"),

		q("2", "Binary Tree Level Order Traversal", models.DifficultyMedium,
			"Given the root of a binary tree, return the level order traversal of its nodes' values (i.e., from left to right, level by level).",
			tags(models.ConceptBinaryTree, models.ConceptBFS, models.ConceptQueue),
			"Consider processing nodes one level at a time.",
			"Use a queue — at each step, process all nodes currently in the queue (that's one level).",
			"Track the queue size at the start of each level to know how many nodes belong to it.",
			"O(n)"),

		q("3", "Number of Islands", models.DifficultyMedium,
			"Given an m x n 2D binary grid which represents a map of '1's (land) and '0's (water), return the number of islands. An island is surrounded by water and is formed by connecting adjacent lands horizontally or vertically.",
			tags(models.ConceptGraph, models.ConceptDFS, models.ConceptArrays),
			"When you find a '1', that's a new island — but you need to mark all connected land.",
			"Use DFS or BFS from each unvisited '1' to mark all connected '1's as visited.",
			"Count how many times you initiate a new DFS/BFS — that's your island count.",
			"O(m * n)"),

		q("4", "Word Break II", models.DifficultyHard,
			"Given a string s and a dictionary of strings wordDict, add spaces in s to construct a sentence where each word is a valid dictionary word. Return all such possible sentences in any order.",
			tags(models.ConceptDynamicProgramming, models.ConceptBacktracking, models.ConceptStrings),
			"Think about how you can break this into subproblems — if the prefix is a word, recurse on the rest.",
			"Use memoization to cache results for each starting index to avoid recomputation.",
			"Backtrack through all valid prefix splits and combine results from the suffix recursion.",
			"O(n * 2^n) worst case"),

		q("5", "Merge Intervals", models.DifficultyMedium,
			"Given an array of intervals where intervals[i] = [starti, endi], merge all overlapping intervals, and return an array of the non-overlapping intervals that cover all the intervals in the input.",
			tags(models.ConceptIntervals, models.ConceptSorting),
			"Sort the intervals by their start time first.",
			"Compare each interval's start with the previous interval's end to check for overlap.",
			"If overlapping, merge by extending the end. Otherwise, add a new interval to the result.",
			"O(n log n)"),

		q("6", "Coin Change", models.DifficultyMedium,
			"You are given an integer array coins representing coins of different denominations and an integer amount representing a total amount of money. Return the fewest number of coins that you need to make up that amount. If that amount cannot be made up, return -1.",
			tags(models.ConceptDynamicProgramming, models.ConceptArrays),
			"Think of this as a bottom-up DP problem — build solutions for smaller amounts first.",
			"dp[i] = minimum coins needed to make amount i. Initialize dp[0] = 0, rest = infinity.",
			"For each amount, try every coin and take the minimum of dp[amount - coin] + 1.",
			"O(amount * coins.length)"),

		q("7", "Climbing Stairs", models.DifficultyEasy,
			"You are climbing a staircase. It takes n steps to reach the top. Each time you can either climb 1 or 2 steps. In how many distinct ways can you climb to the top?",
			tags(models.ConceptDynamicProgramming),
			"The number of ways to reach step n depends on the ways to reach step n-1 and n-2.",
			"This is essentially the Fibonacci sequence: dp[n] = dp[n-1] + dp[n-2].",
			"You only need two variables to track the previous two values — no array needed.",
			"O(n)"),

		q("8", "Longest Substring Without Repeating Characters", models.DifficultyMedium,
			"Given a string s, find the length of the longest substring without repeating characters.",
			tags(models.ConceptSlidingWindow, models.ConceptHashTable, models.ConceptStrings),
			"Use two pointers to maintain a window of unique characters.",
			"Expand the right pointer and track characters in a set or map.",
			"When a duplicate is found, shrink from the left until the window is valid again.",
			"O(n)"),

		q("9", "Course Schedule", models.DifficultyMedium,
			"There are a total of numCourses courses you have to take. Some courses have prerequisites. Given the total number of courses and a list of prerequisite pairs, determine if it is possible to finish all courses.",
			tags(models.ConceptGraph, models.ConceptTopologicalSort, models.ConceptBFS),
			"Model courses and prerequisites as a directed graph.",
			"If there's a cycle in the graph, it's impossible to finish all courses.",
			"Use topological sort (Kahn's algorithm with BFS or DFS with cycle detection).",
			"O(V + E)"),

		q("10", "Serialize and Deserialize Binary Tree", models.DifficultyHard,
			"Design an algorithm to serialize a binary tree to a string and deserialize that string back to the original tree structure.",
			tags(models.ConceptBinaryTree, models.ConceptDFS, models.ConceptDesign),
			"Use preorder traversal and represent null nodes with a sentinel value like 'null'.",
			"Join values with a delimiter during serialization.",
			"During deserialization, use a queue/index to reconstruct the tree recursively.",
			"O(n)"),

		q("11", "Find Median from Data Stream", models.DifficultyHard,
			"Design a data structure that supports addNum(int num) to add an integer from the data stream, and findMedian() to return the median of all elements so far.",
			tags(models.ConceptHeapPriorityQueue, models.ConceptDesign),
			"Maintain two heaps: a max-heap for the lower half and a min-heap for the upper half.",
			"Balance the heaps so their sizes differ by at most 1.",
			"The median is either the top of the larger heap or the average of both tops.",
			"O(log n) add, O(1) find median"),
	}
}
