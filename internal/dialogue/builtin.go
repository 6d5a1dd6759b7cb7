package dialogue

const (
	IDIntro          ID = "intro"
	IDMemo           ID = "memo"
	IDArchivist      ID = "archivist"
	IDArchivistReply ID = "archivist_reply"
	IDBudget         ID = "budget"
	IDMinutes        ID = "minutes"
	IDCipher         ID = "cipher"
	IDShredder       ID = "shredder"
	IDEndingWin      ID = "ending_win"
	IDEndingLose     ID = "ending_lose"
)

const (
	portraitDirector  = "director.png"
	portraitArchivist = "archivist.png"
	portraitEnding    = "ending.png"

	audioDirectorTalk = "director_talk.ogg"
	audioEnchantment  = "enchantment.ogg"
	audioWin          = "win.ogg"
	audioLose         = "lose.ogg"
)

func BuiltinNodes() []Node {
	directorTalk := &Audio{Ref: audioDirectorTalk, Looping: true}
	return []Node{
		{
			ID:       IDIntro,
			Speaker:  "The Director",
			Body:     "Some files have gone missing. Not lost, strategically placed, around the orfice. I am a busy man, I do not have time for paperwork. Bring every one of them back to me before the clock runs out. And no peeking.",
			Portrait: portraitDirector,
			Audio:    directorTalk,
			Rate:     30,
			Advance:  Close(),
		},
		{
			ID:       IDMemo,
			Speaker:  "The Director",
			Body:     "Relax. It is just a memo.",
			Portrait: portraitDirector,
			Audio:    directorTalk,
			Rate:     15,
			Advance:  Close(),
		},
		{
			ID:       IDArchivist,
			Speaker:  "The Archivist",
			Body:     "ℸ ̣⍑ᒷ ⎓╎ꖎᒷᓭ ∴ᒷ∷ᒷ リᒷ⍊ᒷ∷ ꖎ𝙹ᓭℸ ̣",
			Portrait: portraitArchivist,
			Audio:    &Audio{Ref: audioEnchantment},
			Rate:     15,
			Advance:  BranchTo(IDArchivistReply),
		},
		{
			ID:       IDArchivistReply,
			Speaker:  "The Director",
			Body:     "Archivist, show me what you did with the ledg- oh, you are back already. What do you want? Get back to work.",
			Portrait: portraitDirector,
			Audio:    &Audio{Ref: audioDirectorTalk},
			Rate:     15,
			Advance:  Close(),
		},
		{
			ID:       IDBudget,
			Speaker:  "The Director",
			Body:     "Please stop asking me about the budget.",
			Portrait: portraitDirector,
			Audio:    directorTalk,
			Rate:     15,
			Advance:  Close(),
		},
		{
			ID:       IDMinutes,
			Speaker:  "The Director",
			Body:     "Meeting minutes. Hours, really. Some of the best hours anyone has ever had in a meeting.",
			Portrait: portraitDirector,
			Audio:    directorTalk,
			Rate:     15,
			Advance:  Close(),
		},
		{
			ID:       IDCipher,
			Speaker:  "The Archivist",
			Body:     "↸╎↸ ᔑリ||𝙹リᒷ ᓵ⍑ᒷᓵꖌ ʖᒷ⍑╎リ↸ ℸ ̣⍑ᒷ ∴ᔑℸ ̣ᒷ∷ ᓵ𝙹𝙹ꖎᒷ∷",
			Portrait: portraitArchivist,
			Audio:    &Audio{Ref: audioEnchantment, Looping: true},
			Rate:     25,
			Advance:  Close(),
		},
		{
			ID:       IDShredder,
			Speaker:  "The Director",
			Body:     "That was in the shredder? I have the most respect for the shredder, maybe more respect than anyone. Nobody shreds like we shred. Put it on the pile.",
			Portrait: portraitDirector,
			Audio:    directorTalk,
			Rate:     30,
			Advance:  Close(),
		},
		{
			ID:       IDEndingWin,
			Speaker:  "The Director",
			Body:     "Every file, back where it belongs. Tremendous. Now forget everything you read.",
			Portrait: portraitDirector,
			Audio:    &Audio{Ref: audioWin},
			Rate:     20,
			Advance:  Close(),
			Final:    true,
		},
		{
			ID:       IDEndingLose,
			Speaker:  "",
			Body:     "YOU WERE FILED AWAY",
			Portrait: portraitEnding,
			Audio:    &Audio{Ref: audioLose},
			Rate:     12,
			Advance:  Close(),
			Final:    true,
		},
	}
}

// BuiltinLibrary builds the library from BuiltinNodes. The shipped script is
// checked by tests, so a build error here is a programming error.
func BuiltinLibrary() *Library {
	lib, err := NewLibrary(BuiltinNodes()...)
	if err != nil {
		panic(err)
	}
	return lib
}
