package content

// row pairs the two scripts of one reading; romaji[0] is the canonical spelling
type row struct {
	id       string
	hiragana string
	katakana string
	romaji   []string
}

func r(id, hira, kata string, romaji ...string) row {
	if len(romaji) == 0 {
		romaji = []string{id}
	}
	return row{id: id, hiragana: hira, katakana: kata, romaji: romaji}
}

var basicRows = []row{
	r("a", "あ", "ア"), r("i", "い", "イ"), r("u", "う", "ウ"), r("e", "え", "エ"), r("o", "お", "オ"),
	r("ka", "か", "カ"), r("ki", "き", "キ"), r("ku", "く", "ク"), r("ke", "け", "ケ"), r("ko", "こ", "コ"),
	r("sa", "さ", "サ"), r("shi", "し", "シ", "shi", "si"), r("su", "す", "ス"), r("se", "せ", "セ"), r("so", "そ", "ソ"),
	r("ta", "た", "タ"), r("chi", "ち", "チ", "chi", "ti"), r("tsu", "つ", "ツ", "tsu", "tu"), r("te", "て", "テ"), r("to", "と", "ト"),
	r("na", "な", "ナ"), r("ni", "に", "ニ"), r("nu", "ぬ", "ヌ"), r("ne", "ね", "ネ"), r("no", "の", "ノ"),
	r("ha", "は", "ハ"), r("hi", "ひ", "ヒ"), r("fu", "ふ", "フ", "fu", "hu"), r("he", "へ", "ヘ"), r("ho", "ほ", "ホ"),
	r("ma", "ま", "マ"), r("mi", "み", "ミ"), r("mu", "む", "ム"), r("me", "め", "メ"), r("mo", "も", "モ"),
	r("ya", "や", "ヤ"), r("yu", "ゆ", "ユ"), r("yo", "よ", "ヨ"),
	r("ra", "ら", "ラ"), r("ri", "り", "リ"), r("ru", "る", "ル"), r("re", "れ", "レ"), r("ro", "ろ", "ロ"),
	r("wa", "わ", "ワ"), r("wo", "を", "ヲ", "wo", "o"),
	r("n", "ん", "ン", "n", "nn"),
}

var dakutenRows = []row{
	r("ga", "が", "ガ"), r("gi", "ぎ", "ギ"), r("gu", "ぐ", "グ"), r("ge", "げ", "ゲ"), r("go", "ご", "ゴ"),
	r("za", "ざ", "ザ"), r("ji", "じ", "ジ", "ji", "zi"), r("zu", "ず", "ズ"), r("ze", "ぜ", "ゼ"), r("zo", "ぞ", "ゾ"),
	r("da", "だ", "ダ"), r("di", "ぢ", "ヂ", "ji", "di", "dji"), r("du", "づ", "ヅ", "zu", "du", "dzu"), r("de", "で", "デ"), r("do", "ど", "ド"),
	r("ba", "ば", "バ"), r("bi", "び", "ビ"), r("bu", "ぶ", "ブ"), r("be", "べ", "ベ"), r("bo", "ぼ", "ボ"),
	r("pa", "ぱ", "パ"), r("pi", "ぴ", "ピ"), r("pu", "ぷ", "プ"), r("pe", "ぺ", "ペ"), r("po", "ぽ", "ポ"),
}

var yoonRows = []row{
	r("kya", "きゃ", "キャ"), r("kyu", "きゅ", "キュ"), r("kyo", "きょ", "キョ"),
	r("sha", "しゃ", "シャ", "sha", "sya"), r("shu", "しゅ", "シュ", "shu", "syu"), r("sho", "しょ", "ショ", "sho", "syo"),
	r("cha", "ちゃ", "チャ", "cha", "tya", "cya"), r("chu", "ちゅ", "チュ", "chu", "tyu", "cyu"), r("cho", "ちょ", "チョ", "cho", "tyo", "cyo"),
	r("nya", "にゃ", "ニャ"), r("nyu", "にゅ", "ニュ"), r("nyo", "にょ", "ニョ"),
	r("hya", "ひゃ", "ヒャ"), r("hyu", "ひゅ", "ヒュ"), r("hyo", "ひょ", "ヒョ"),
	r("mya", "みゃ", "ミャ"), r("myu", "みゅ", "ミュ"), r("myo", "みょ", "ミョ"),
	r("rya", "りゃ", "リャ"), r("ryu", "りゅ", "リュ"), r("ryo", "りょ", "リョ"),
	r("gya", "ぎゃ", "ギャ"), r("gyu", "ぎゅ", "ギュ"), r("gyo", "ぎょ", "ギョ"),
	r("ja", "じゃ", "ジャ", "ja", "zya", "jya"), r("ju", "じゅ", "ジュ", "ju", "zyu", "jyu"), r("jo", "じょ", "ジョ", "jo", "zyo", "jyo"),
	r("bya", "びゃ", "ビャ"), r("byu", "びゅ", "ビュ"), r("byo", "びょ", "ビョ"),
	r("pya", "ぴゃ", "ピャ"), r("pyu", "ぴゅ", "ピュ"), r("pyo", "ぴょ", "ピョ"),
}

// Catalog is the full list of entries for one script, in table order
type Catalog []Entry

var (
	hiraganaCatalog = buildCatalog(Hiragana)
	katakanaCatalog = buildCatalog(Katakana)
)

func buildCatalog(t Type) Catalog {
	var out Catalog
	for _, group := range [][]row{basicRows, dakutenRows, yoonRows} {
		for _, rw := range group {
			glyph := rw.hiragana
			if t == Katakana {
				glyph = rw.katakana
			}
			out = append(out, Entry{
				ID:     rw.id,
				Kana:   glyph,
				Romaji: append([]string(nil), rw.romaji...),
				Type:   t,
			})
		}
	}
	return out
}

// HiraganaCatalog returns a copy of the built-in hiragana entries
func HiraganaCatalog() Catalog {
	return append(Catalog(nil), hiraganaCatalog...)
}

// KatakanaCatalog returns a copy of the built-in katakana entries
func KatakanaCatalog() Catalog {
	return append(Catalog(nil), katakanaCatalog...)
}

// Library holds the per-script catalogs a Set is assembled from
// The zero value is an empty library; Builtin returns the shipped tables
type Library struct {
	Hiragana Catalog
	Katakana Catalog
}

// Builtin returns the shipped catalogs
func Builtin() Library {
	return Library{Hiragana: HiraganaCatalog(), Katakana: KatakanaCatalog()}
}

// ForSet returns the entries active for the named set
// Unknown set names yield an empty catalog
func (l Library) ForSet(set Set) Catalog {
	switch set {
	case SetHiragana:
		return append(Catalog(nil), l.Hiragana...)
	case SetKatakana:
		return append(Catalog(nil), l.Katakana...)
	case SetMixed:
		out := make(Catalog, 0, len(l.Hiragana)+len(l.Katakana))
		out = append(out, l.Hiragana...)
		return append(out, l.Katakana...)
	}
	return nil
}

// Lookup finds an entry by key
func (c Catalog) Lookup(k Key) (Entry, bool) {
	for _, e := range c {
		if e.Type == k.Type && e.ID == k.ID {
			return e, true
		}
	}
	return Entry{}, false
}
