package catalog

import "github.com/terra-clan/interview-coach/internal/models"

// cloudQuestions leans on design-style and systems-flavoured problems.
func cloudQuestions() []models.Question {
	return []models.Question{
		q("0", "Design HashMap", models.DifficultyEasy,
			"Design a HashMap without using any built-in hash table libraries. Implement put(key, value), get(key), and remove(key) functions.",
			tags(models.ConceptHashTable, models.ConceptDesign, models.ConceptArrays),
			"Think about how to map a key to an index — what operation gives you a bounded range?",
			"Use an array of buckets with a simple hash function (e.g., key % array_size).",
			"Handle collisions with chaining (linked list per bucket).",
			"O(1) average per operation"),

		q("1", "Number of Recent Calls", models.DifficultyEasy,
			"Write a class RecentCounter that counts the number of recent requests within a certain time frame. Implement ping(t) which adds a new request at time t and returns the number of requests in the past 3000 milliseconds (inclusive).",
			tags(models.ConceptQueue, models.ConceptSlidingWindow),
			"You only care about requests within a sliding window of the last 3000ms.",
			"Use a queue — add each new request and remove requests older than t - 3000.",
			"The size of the queue after cleanup is your answer.",
			"O(1) amortized"),

		q("2", "Meeting Rooms II", models.DifficultyMedium,
			"Given an array of meeting time intervals consisting of start and end times, find the minimum number of conference rooms required.",
			tags(models.ConceptIntervals, models.ConceptHeapPriorityQueue, models.ConceptSorting),
			"Sort the meetings by start time first.",
			"Use a min-heap to track the earliest ending meeting — if a new meeting starts after it ends, reuse that room.",
			"If the new meeting starts before the earliest end, you need an additional room. The heap size is your answer.",
			"O(n log n)"),

		q("3", "Task Scheduler", models.DifficultyMedium,
			"Given a char array tasks representing CPU tasks (where each letter represents a different task) and a non-negative integer n representing the cooldown interval between two same tasks, return the least number of intervals the CPU will take to finish all the given tasks.",
			tags(models.ConceptGreedy, models.ConceptQueue, models.ConceptHeapPriorityQueue),
			"The most frequent task drives the total time — think about how idle slots form around it.",
			"Calculate idle slots based on the max-frequency task, then fill them with other tasks.",
			"Formula approach: total = max(tasks.length, (maxFreq - 1) * (n + 1) + countOfMaxFreqTasks).",
			"O(n)"),

		q("4", "LRU Cache", models.DifficultyHard,
			"Design a data structure that follows the constraints of a Least Recently Used (LRU) cache. Implement get(key) and put(key, value) with O(1) time complexity. When the cache reaches capacity, evict the least recently used key before inserting a new item.",
			tags(models.ConceptDesign, models.ConceptHashTable, models.ConceptLinkedList),
			"You need O(1) lookup AND O(1) removal/insertion to track usage order.",
			"Combine a HashMap (for O(1) lookup) with a doubly linked list (for O(1) order updates).",
			"On access, move the node to the head of the list. On eviction, remove from the tail.",
			"O(1) per operation"),

		q("5", "Implement Trie", models.DifficultyMedium,
			"Implement a trie (prefix tree) with insert, search, and startsWith methods.",
			tags(models.ConceptTrie, models.ConceptDesign),
			"Each node holds a map of children (character -> node) and a boolean for end-of-word.",
			"Insert: walk character by character, creating nodes as needed. Mark the last node.",
			"Search and startsWith are similar walks — search checks the end-of-word flag.",
			"O(m) per operation where m is the word length"),

		q("6", "Time Based Key-Value Store", models.DifficultyMedium,
			"Design a time-based key-value data structure that can store multiple values for the same key at different timestamps and retrieve the value at a certain timestamp.",
			tags(models.ConceptDesign, models.ConceptBinarySearch, models.ConceptHashTable),
			"Store values in a list ordered by timestamp for each key.",
			"Use binary search to find the largest timestamp <= the requested timestamp.",
			"A TreeMap or manual binary search on the timestamp list both work.",
			"O(log n) get, O(1) set"),

		q("7", "Min Stack", models.DifficultyEasy,
			"Design a stack that supports push, pop, top, and retrieving the minimum element in constant time.",
			tags(models.ConceptStack, models.ConceptDesign),
			"You need to track the minimum even as elements are popped.",
			"Use a second stack (or pair) that tracks the minimum at each level.",
			"When you push, also push the current minimum onto the min stack.",
			"O(1) per operation"),

		q("8", "Insert Delete GetRandom O(1)", models.DifficultyMedium,
			"Implement the RandomizedSet class with insert, remove, and getRandom, each in average O(1) time.",
			tags(models.ConceptDesign, models.ConceptHashTable, models.ConceptArrays),
			"Use an array for O(1) random access and a hashmap for O(1) lookup.",
			"On remove, swap the element with the last element in the array, then pop.",
			"The hashmap maps values to their indices in the array.",
			"O(1) average per operation"),

		q("9", "Snapshot Array", models.DifficultyMedium,
			"Implement a SnapshotArray that supports set(index, val), snap() which takes a snapshot and returns the snap_id, and get(index, snap_id) which returns the value at the given index for the given snap_id.",
			tags(models.ConceptDesign, models.ConceptBinarySearch, models.ConceptArrays),
			"Don't copy the whole array on each snap — that's too expensive.",
			"For each index, store a list of (snap_id, value) pairs.",
			"Use binary search to find the right value for a given snap_id.",
			"O(log S) get where S is snap count"),

		q("10", "Design Twitter", models.DifficultyHard,
			"Design a simplified version of Twitter where users can post tweets, follow/unfollow another user, and get the 10 most recent tweets in the user's news feed.",
			tags(models.ConceptDesign, models.ConceptHeapPriorityQueue, models.ConceptHashTable),
			"Maintain a tweet list per user and a set of followees per user.",
			"For the news feed, merge the tweet lists of all followees — like merging k sorted lists.",
			"Use a max-heap (priority queue) to efficiently get the top 10 most recent tweets.",
			"O(k log k) for feed where k = number of followees"),

		q("11", "Sliding Window Maximum", models.DifficultyHard,
			"You are given an array of integers nums and an integer k. There is a sliding window of size k moving from the very left to the very right. Return the max value in each window position.",
			tags(models.ConceptSlidingWindow, models.ConceptQueue, models.ConceptArrays),
			"A brute-force scan of each window is O(nk). Think about a structure that tracks the max efficiently.",
			"Use a monotonic decreasing deque — remove smaller elements from the back before adding.",
			"Remove elements from the front when they fall outside the window. The front is always the max.",
			"O(n)"),
	}
}
