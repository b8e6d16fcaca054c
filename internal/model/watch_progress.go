package model

// WatchProgressEntry 单个视频的观看状态。Seconds 只增不减（回看/重播不回退），
// Completed 一旦为 true 永不回退。
type WatchProgressEntry struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Seconds   int    `json:"seconds"`
	Duration  int    `json:"duration"`
	Percent   int    `json:"percent"`
	Completed bool   `json:"completed"`
	UpdatedAt int64  `json:"updatedAt"` // unix 毫秒
}

// CourseProgress 一门课程下 videoId -> 观看状态
type CourseProgress map[string]WatchProgressEntry

// CourseAggregate 课程级汇总，供 my-learning 面板使用
type CourseAggregate struct {
	TotalSecondsWatched int    `json:"totalSecondsWatched"`
	TotalDuration       int    `json:"totalDuration"`
	Percent             int    `json:"percent"`
	TimeSpent           string `json:"timeSpent"` // 如 "1h 20m"
	Videos              int    `json:"videos"`
}
