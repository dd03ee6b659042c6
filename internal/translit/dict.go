package translit

// maxKeyLen is the longest key the greedy scanner probes for. Every key in
// phoneticDict is between 1 and maxKeyLen letters.
const maxKeyLen = 8

// phoneticDict maps lowercase ASCII substrings to Katakana approximations.
// It holds whole words, multi-letter endings, vowel digraphs, consonant
// clusters, and consonant+vowel syllables. The scanner relies on trying the
// longest key first: overlapping keys like "mac" and "ma" resolve to the
// longer one. Never hand this map to callers; it is read-only after load.
var phoneticDict = map[string]string{
	// Whole words — mostly names and loanwords that show up in name lists.
	"hotel": "ホテル", "coffee": "コーヒー", "taxi": "タクシー",
	"bus": "バス", "camera": "カメラ", "piano": "ピアノ",
	"radio": "ラジオ", "hello": "ハロー", "world": "ワールド",
	"john": "ジョン", "paul": "ポール", "peter": "ピーター",
	"mary": "メアリー", "anna": "アンナ", "maria": "マリア",
	"david": "デイビッド", "michael": "マイケル", "robert": "ロバート",
	"william": "ウィリアム", "james": "ジェームズ", "george": "ジョージ",
	"thomas": "トーマス", "henry": "ヘンリー", "smith": "スミス",
	"brown": "ブラウン", "taylor": "テイラー", "martin": "マーティン",
	"white": "ホワイト", "king": "キング", "young": "ヤング",
	"night": "ナイト", "light": "ライト", "right": "ライト",
	"grand": "グランド", "tower": "タワー", "center": "センター",
	"park": "パーク", "house": "ハウス", "group": "グループ",
	"system": "システム", "service": "サービス", "company": "カンパニー",
	"engineer": "エンジニア", "building": "ビルディング", "mountain": "マウンテン",
	"computer": "コンピュータ", "internet": "インターネット",

	// Endings and spelling patterns.
	"tion": "ション", "sion": "ジョン", "ture": "チャー", "sure": "シャー",
	"ough": "オー", "augh": "オー", "ight": "アイト", "eigh": "エイ",
	"ment": "メント", "ster": "スター", "ther": "ザー", "tian": "シャン",
	"cial": "シャル", "tial": "シャル", "ing": "イング", "ful": "フル",
	"ous": "アス", "age": "エージ", "ate": "エイト", "ance": "アンス",
	"ence": "エンス", "able": "エイブル", "ble": "ブル", "cle": "クル",
	"dge": "ッジ", "tch": "ッチ",

	// Vowel digraphs and semivowel pairs.
	"aa": "アー", "ee": "イー", "ii": "イー", "oo": "ウー", "uu": "ウー",
	"ai": "アイ", "au": "オー", "aw": "オー", "ay": "エイ",
	"ea": "イー", "ei": "エイ", "ey": "エイ", "ew": "ュー",
	"ie": "イー", "oa": "オー", "oi": "オイ", "oy": "オイ",
	"ou": "アウ", "ow": "アウ", "ue": "ュー", "ui": "ウイ",

	// Consonant clusters.
	"sha": "シャ", "shi": "シ", "shu": "シュ", "she": "シェ", "sho": "ショ",
	"sh": "シュ",
	"cha": "チャ", "chi": "チ", "chu": "チュ", "che": "チェ", "cho": "チョ",
	"ch": "チ",
	"tha": "サ", "thi": "シ", "thu": "ス", "the": "ゼ", "tho": "ソ",
	"th": "ス",
	"pha": "ファ", "phi": "フィ", "phu": "フ", "phe": "フェ", "pho": "フォ",
	"ph": "フ",
	"wha": "ワ", "whi": "ウィ", "whe": "ウェ", "who": "フー",
	"wh": "ウ",
	"qua": "クア", "qui": "クイ", "que": "クエ", "quo": "クオ",
	"qu": "ク",
	"ck": "ック", "nd": "ンド", "nt": "ント", "mp": "ンプ", "ng": "ング",
	"nk": "ンク", "ss": "ス", "tt": "ット", "pp": "ップ", "dd": "ッド",
	"ff": "ッフ", "gg": "ッグ", "ll": "ル", "mm": "ム", "nn": "ン",
	"rr": "ル", "cc": "ック", "bb": "ッブ", "kk": "ック", "zz": "ッズ",

	// Consonant+vowel syllables.
	"ba": "バ", "bi": "ビ", "bu": "ブ", "be": "ベ", "bo": "ボ",
	"ca": "カ", "ci": "シ", "cu": "ク", "ce": "セ", "co": "コ",
	"da": "ダ", "di": "ディ", "du": "ドゥ", "de": "デ", "do": "ド",
	"fa": "ファ", "fi": "フィ", "fu": "フ", "fe": "フェ", "fo": "フォ",
	"ga": "ガ", "gi": "ギ", "gu": "グ", "ge": "ゲ", "go": "ゴ",
	"ha": "ハ", "hi": "ヒ", "hu": "フ", "he": "ヘ", "ho": "ホ",
	"ja": "ジャ", "ji": "ジ", "ju": "ジュ", "je": "ジェ", "jo": "ジョ",
	"ka": "カ", "ki": "キ", "ku": "ク", "ke": "ケ", "ko": "コ",
	"la": "ラ", "li": "リ", "lu": "ル", "le": "レ", "lo": "ロ",
	"ma": "マ", "mi": "ミ", "mu": "ム", "me": "メ", "mo": "モ",
	"na": "ナ", "ni": "ニ", "nu": "ヌ", "ne": "ネ", "no": "ノ",
	"pa": "パ", "pi": "ピ", "pu": "プ", "pe": "ペ", "po": "ポ",
	"ra": "ラ", "ri": "リ", "ru": "ル", "re": "レ", "ro": "ロ",
	"sa": "サ", "si": "シ", "su": "ス", "se": "セ", "so": "ソ",
	"ta": "タ", "ti": "ティ", "tu": "トゥ", "te": "テ", "to": "ト",
	"va": "ヴァ", "vi": "ヴィ", "vu": "ヴ", "ve": "ヴェ", "vo": "ヴォ",
	"wa": "ワ", "wi": "ウィ", "wu": "ウ", "we": "ウェ", "wo": "ウォ",
	"ya": "ヤ", "yi": "イ", "yu": "ユ", "ye": "イェ", "yo": "ヨ",
	"za": "ザ", "zi": "ジ", "zu": "ズ", "ze": "ゼ", "zo": "ゾ",
	"xa": "クサ", "xi": "クシ", "xu": "クス", "xe": "クセ", "xo": "クソ",

	// Short words that must beat their letter-by-letter decomposition.
	"mac": "マック", "mc": "マク", "jr": "ジュニア",

	// Single letters.
	"a": "ア", "i": "イ", "u": "ウ", "e": "エ", "o": "オ",
	"n": "ン", "y": "イ", "x": "クス",
}
