package util

// 集合名取模型名的全小写，与既有线上数据保持一致
const (
	CollectionLearningPath = "learningpath"
	CollectionProgress     = "progress"
)

// 诊断接口中异常文本的最大长度
const DiagnosticErrorLimit = 50
