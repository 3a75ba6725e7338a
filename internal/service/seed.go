package service

import (
	"fmt"

	"story_learning_backend/internal/model"
)

type nodeSeed struct {
	title      string
	summary    string
	content    string
	difficulty string
	nodeType   string
}

// 默认路径的固定节点表。顺序即展示顺序，id 按 n1..n28 生成。
var defaultNodes = []nodeSeed{
	{"Arrival", "Meet your guide and learn the rules", "Welcome adventurer! This realm turns lessons into quests.", model.DifficultyEasy, ""},
	{"Fork in the Road", "Choose your learning style", "Pick examples, theory, or challenges to proceed.", model.DifficultyEasy, ""},
	{"The Puzzle Gate", "Apply what you learned", "Solve a small puzzle to open the gate.", model.DifficultyMedium, ""},
	{"The Variable Vault", "Store your first treasures", "Every hero needs a pack. Variables are labeled pouches that hold what you gather along the way.", model.DifficultyEasy, model.NodeTypeLesson},
	{"Scroll of Types", "Learn what things are made of", "Numbers, words, truths and lies. The scroll teaches you to tell them apart before mixing them.", model.DifficultyEasy, model.NodeTypeLesson},
	{"The Echo Caves", "Speak and be heard", "Shout into the caves and read the echo. Input and output are how your program talks to the world.", model.DifficultyEasy, model.NodeTypeVideo},
	{"Crossroads of Choice", "Let your code decide", "If the left path is flooded, take the right. Conditions steer your journey.", model.DifficultyEasy, model.NodeTypeLesson},
	{"The Looping Stairs", "Climb the same steps, faster", "The tower has a thousand identical steps. You will not write a thousand lines. Loops carry you up.", model.DifficultyMedium, model.NodeTypeLesson},
	{"Trial of the Stairs", "Prove your climbing technique", "The stair warden asks three questions about loops. Answer well to pass.", model.DifficultyMedium, model.NodeTypeQuiz},
	{"The Function Forge", "Forge reusable tools", "Why reforge a sword for every battle? Name a spell once and cast it anywhere.", model.DifficultyMedium, model.NodeTypeLesson},
	{"Forge Master's Test", "Show the master your tools", "The forge master inspects your functions: names, inputs, and what they return.", model.DifficultyMedium, model.NodeTypeQuiz},
	{"Satchel of Many Things", "Carry many items in one bag", "A list is a satchel with numbered slots. Learn to pack it, search it, and empty it.", model.DifficultyMedium, model.NodeTypeLesson},
	{"The Sorting Stones", "Put the stones in order", "Watch the river sort its stones by size, then teach your satchel the same trick.", model.DifficultyMedium, model.NodeTypeVideo},
	{"Maze of Mirrors", "Walk loops within loops", "Every mirror reflects another corridor. Nested steps multiply fast; count them carefully.", model.DifficultyMedium, model.NodeTypeLesson},
	{"The Dictionary Den", "Look things up by name", "The den keeper finds any scroll by its label, not its shelf position. Keys open everything.", model.DifficultyMedium, model.NodeTypeLesson},
	{"Riddle of the Den", "Answer the keeper's riddles", "Keys and values, lost and found. The keeper's riddles settle whether you belong here.", model.DifficultyMedium, model.NodeTypeQuiz},
	{"River of Streams", "Read and write the flowing water", "Messages arrive by river. Learn to read files from upstream and send your own down.", model.DifficultyMedium, model.NodeTypeLesson},
	{"The Broken Bridge", "Find the plank that fails", "The bridge collapses on the seventh plank. Walk it slowly, plank by plank, until you see why.", model.DifficultyMedium, model.NodeTypeLesson},
	{"Campfire of Errors", "Tales of crashes survived", "Veterans trade stories by the fire: how they caught errors before the errors caught them.", model.DifficultyMedium, model.NodeTypeVideo},
	{"Tower of Recursion", "Enter the tower within the tower", "Inside the tower stands a smaller tower, and inside that another. Find the floor where it ends.", model.DifficultyHard, model.NodeTypeLesson},
	{"Echoes Within Echoes", "Trace the nested calls", "Shout once and count the echoes. The tower only releases those who can follow the call stack.", model.DifficultyHard, model.NodeTypeQuiz},
	{"The Guild of Objects", "Join the guild of makers", "Guild members bundle their tools and their craft together. Objects keep state and skill side by side.", model.DifficultyHard, model.NodeTypeLesson},
	{"Blueprints and Golems", "Build golems from one blueprint", "One blueprint, many golems. Classes describe; instances walk.", model.DifficultyHard, model.NodeTypeLesson},
	{"The Library of Ancients", "Borrow power from old masters", "The ancients already solved this. Learn to import their work instead of rewriting it.", model.DifficultyMedium, model.NodeTypeLesson},
	{"Stormwatch Keep", "Test your walls before the storm", "The keep survives because every wall was tested before the siege. Write the tests first.", model.DifficultyHard, model.NodeTypeLesson},
	{"The Final Ascent", "Combine everything you carry", "No more guides. Build a small working tool using every skill from the road behind you.", model.DifficultyHard, model.NodeTypeProject},
	{"Dragon of Legacy Code", "Face code you did not write", "The dragon hoards ten years of tangled scrolls. Read, understand, and change one carefully.", model.DifficultyHard, model.NodeTypeProject},
	{"The Crowning", "Look back at the road", "The realm crowns you. Review the map, revisit any stop, and choose your next journey.", model.DifficultyEasy, model.NodeTypeLesson},
}

// defaultLearningPath 构造固定的默认路径。每次调用内容完全相同：
// 节点 id 为 n1..nN，order 从 0 递增。
func defaultLearningPath() *model.LearningPath {
	nodes := make([]model.PathNode, 0, len(defaultNodes))
	for i, seed := range defaultNodes {
		nodes = append(nodes, model.PathNode{
			ID:         fmt.Sprintf("n%d", i+1),
			Title:      seed.title,
			Summary:    seed.summary,
			Content:    seed.content,
			Order:      i,
			Difficulty: seed.difficulty,
			Type:       seed.nodeType,
		})
	}

	return &model.LearningPath{
		Title:       "Hero's Journey into Coding",
		Description: "An interactive story where each stop teaches a concept.",
		Theme:       "gaming",
		Nodes:       nodes,
	}
}
