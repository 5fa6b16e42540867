package engine

import "math/rand"

// Words is the drawing vocabulary. Selection is uniform with replacement.
var Words = []string{
	"cat", "dog", "house", "sun", "moon",
	"tree", "car", "plane", "boat", "flower",
	"star", "fish", "bird", "mountain", "cloud",
	"pizza", "book", "phone", "dolphin", "elephant",
	"panda", "koala", "penguin", "taco", "sushi",
	"cake", "ice cream", "fruit", "guitar", "hat",
	"trump", "beyonce", "einstein", "harry", "frida",
	"magic", "unicorn", "dragon", "robot", "fairy",
	"monster", "yeti", "storm", "love", "joy",
	"fear", "dream", "rainbow", "cactus", "pillow",
	"skate", "dance", "swim", "jump", "sing",
	"explore", "firework", "balloon", "rocket", "candy",
	"leaf", "river", "ocean", "desert", "iceberg",
}

// RandomWord picks the next secret word.
func RandomWord() string {
	return Words[rand.Intn(len(Words))]
}
