package catalog

import "github.com/terra-clan/interview-coach/internal/models"

// mlQuestions favours arrays, binary search and dynamic programming.
func mlQuestions() []models.Question {
	return []models.Question{
		q("0", "Running Sum of 1D Array", models.DifficultyEasy,
			"Given an array nums, return the running sum of nums. The running sum is defined as runningSum[i] = sum(nums[0]...nums[i]).",
			tags(models.ConceptArrays, models.ConceptPrefixSum),
			"Each element in the result depends on the previous result plus the current element.",
			"You can modify the array in-place: nums[i] += nums[i-1] for i >= 1.",
			"This is the simplest form of a prefix sum — each position stores the cumulative total.",
			"O(n)"),

		q("1", "Find Smallest Letter Greater Than Target", models.DifficultyEasy,
			"Given a sorted array of characters letters and a character target, return the smallest character in the array that is larger than target. The letters wrap around, so if target is larger than all characters, return the first character.",
			tags(models.ConceptBinarySearch, models.ConceptArrays),
			"The array is sorted — think about how to efficiently find the insertion point.",
			"Use binary search to find the first letter strictly greater than target.",
			"If binary search lands past the end of the array, wrap around and return letters[0].",
			"O(log n)"),

		q("2", "Maximum Subarray", models.DifficultyMedium,
			"Given an integer array nums, find the subarray with the largest sum and return its sum. A subarray is a contiguous non-empty sequence of elements.",
			tags(models.ConceptArrays, models.ConceptDynamicProgramming),
			"At each position, decide: extend the current subarray or start fresh from here?",
			"Track currentMax = max(nums[i], currentMax + nums[i]) at each step.",
			"This is Kadane's algorithm — also keep a globalMax to remember the best sum seen so far.",
			"O(n)"),

		q("3", "Count of Smaller Numbers After Self", models.DifficultyMedium,
			"Given an integer array nums, return an integer array counts where counts[i] is the number of smaller elements to the right of nums[i].",
			tags(models.ConceptSorting, models.ConceptBinarySearch, models.ConceptArrays),
			"Brute force is O(n^2). Think about processing from right to left and maintaining a sorted structure.",
			"As you iterate from the end, insert each number into a sorted list and use binary search to find its position.",
			"The insertion index in the sorted list tells you how many smaller elements are to its right.",
			"O(n log n)"),

		q("4", "Longest Increasing Subsequence", models.DifficultyHard,
			"Given an integer array nums, return the length of the longest strictly increasing subsequence.",
			tags(models.ConceptDynamicProgramming, models.ConceptBinarySearch, models.ConceptArrays),
			"A DP approach: dp[i] = length of the longest increasing subsequence ending at index i.",
			"For each i, check all j < i where nums[j] < nums[i] and take the max dp[j] + 1.",
			"For O(n log n): maintain a tails array and use binary search to find where each element fits.",
			"O(n log n)"),

		q("5", "Top K Frequent Elements", models.DifficultyMedium,
			"Given an integer array nums and an integer k, return the k most frequent elements. You may return the answer in any order.",
			tags(models.ConceptHeapPriorityQueue, models.ConceptHashTable, models.ConceptArrays),
			"First, count the frequency of each element using a hash map.",
			"Use a min-heap of size k to track the top k frequent elements.",
			"Alternatively, use bucket sort where the index is the frequency.",
			"O(n log k)"),

		q("6", "K Closest Points to Origin", models.DifficultyMedium,
			"Given an array of points on the X-Y plane and an integer k, return the k closest points to the origin (0, 0).",
			tags(models.ConceptHeapPriorityQueue, models.ConceptSorting),
			"Distance to origin is sqrt(x^2 + y^2), but you can compare x^2 + y^2 directly.",
			"Use a max-heap of size k — if a new point is closer than the farthest in the heap, swap.",
			"Alternatively, use quickselect for average O(n) performance.",
			"O(n log k)"),

		q("7", "Pascal's Triangle", models.DifficultyEasy,
			"Given an integer numRows, return the first numRows of Pascal's triangle. Each number is the sum of the two numbers directly above it.",
			tags(models.ConceptArrays, models.ConceptDynamicProgramming),
			"Start with [1]. Each new row starts and ends with 1.",
			"For inner elements: row[j] = previousRow[j-1] + previousRow[j].",
			"Build each row based on the previous one — this is iterative DP.",
			"O(numRows^2)"),

		q("8", "Search a 2D Matrix", models.DifficultyMedium,
			"Write an efficient algorithm that searches for a value in an m x n matrix. Integers in each row are sorted from left to right. The first integer of each row is greater than the last integer of the previous row.",
			tags(models.ConceptBinarySearch, models.ConceptArrays),
			"Treat the 2D matrix as a sorted 1D array of m*n elements.",
			"Use a single binary search with index mapping: row = mid / n, col = mid % n.",
			"This gives you O(log(m*n)) time complexity.",
			"O(log(m*n))"),

		q("9", "Find Peak Element", models.DifficultyMedium,
			"A peak element is an element that is strictly greater than its neighbors. Given an integer array nums, find a peak element and return its index. The array may contain multiple peaks; return the index to any of them.",
			tags(models.ConceptBinarySearch, models.ConceptArrays),
			"Binary search works because if nums[mid] < nums[mid+1], a peak must exist to the right.",
			"Similarly, if nums[mid] < nums[mid-1], a peak exists to the left.",
			"Narrow the search range until low == high — that's your peak.",
			"O(log n)"),

		q("10", "Edit Distance", models.DifficultyHard,
			"Given two strings word1 and word2, return the minimum number of operations required to convert word1 to word2. You have three operations: insert, delete, or replace a character.",
			tags(models.ConceptDynamicProgramming, models.ConceptStrings),
			"dp[i][j] = min operations to convert word1[0..i-1] to word2[0..j-1].",
			"If characters match, dp[i][j] = dp[i-1][j-1]. Otherwise, take min of insert, delete, replace.",
			"Base cases: dp[i][0] = i (delete all), dp[0][j] = j (insert all).",
			"O(m * n)"),

		q("11", "Burst Balloons", models.DifficultyHard,
			"You are given n balloons with numbers on them. Bursting balloon i gives you nums[i-1] * nums[i] * nums[i+1] coins. Find the maximum coins you can collect by bursting all balloons.",
			tags(models.ConceptDynamicProgramming, models.ConceptBacktracking),
			"Think about which balloon to burst LAST in a range, not first.",
			"dp[i][j] = max coins from bursting all balloons between i and j (exclusive).",
			"For each k in (i,j), try k as the last balloon: dp[i][j] = max(dp[i][k] + dp[k][j] + nums[i]*nums[k]*nums[j]).",
			"O(n^3)"),
	}
}
