package model

// Progress 每个 (user_id, path_title) 对应一条进度文档。
// 该键由查询后再插入来保证唯一，存储层不加约束。
// completed_node_ids 语义上是集合，序列化为数组，顺序无意义。
//
// swagger:model Progress
type Progress struct {
	UserID           string   `bson:"user_id" json:"user_id"`
	PathTitle        string   `bson:"path_title" json:"path_title"`
	CompletedNodeIDs []string `bson:"completed_node_ids" json:"completed_node_ids"`
}
