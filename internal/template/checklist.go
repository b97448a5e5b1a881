package template

import (
	"app-submission-api/internal/domain"
)

// defaultChecklistIOS lists the App Store listing requirements
var defaultChecklistIOS = []ChecklistTemplate{
	{
		Title:       "アプリ名",
		Description: "App Storeに表示されるアプリケーション名",
		Platform:    domain.PlatformIOS,
		Category:    "basic_info",
		Order:       1,
	},
	{
		Title:       "バンドルID",
		Description: "アプリケーションの一意な識別子（例: com.company.appname）",
		Platform:    domain.PlatformIOS,
		Category:    "basic_info",
		Order:       2,
	},
	{
		Title:       "カテゴリ",
		Description: "App Storeのカテゴリ選択",
		Platform:    domain.PlatformIOS,
		Category:    "basic_info",
		Order:       3,
	},
	{
		Title:       "年齢制限",
		Description: "年齢制限の有無と内容",
		Platform:    domain.PlatformIOS,
		Category:    "basic_info",
		Order:       4,
	},
	{
		Title:       "アプリアイコン",
		Description: "1024x1024pxのアプリアイコン",
		Platform:    domain.PlatformIOS,
		Category:    "assets",
		Order:       5,
	},
	{
		Title:       "スクリーンショット",
		Description: "各デバイスサイズごとに4枚以上のスクリーンショット",
		Platform:    domain.PlatformIOS,
		Category:    "assets",
		Order:       6,
	},
	{
		Title:       "説明文",
		Description: "アプリの詳細説明",
		Platform:    domain.PlatformIOS,
		Category:    "content",
		Order:       7,
	},
	{
		Title:       "プライバシーポリシー",
		Description: "プライバシーポリシーと設置URL",
		Platform:    domain.PlatformIOS,
		Category:    "legal",
		Order:       8,
	},
	{
		Title:       "バージョン番号",
		Description: "アプリのバージョン番号（例: 1.0.0）",
		Platform:    domain.PlatformIOS,
		Category:    "technical",
		Order:       9,
	},
	{
		Title:       "ビルド番号",
		Description: "ビルド番号（例: 1）",
		Platform:    domain.PlatformIOS,
		Category:    "technical",
		Order:       10,
	},
	{
		Title:       "テストアカウント",
		Description: "審査用のテストアカウント情報",
		Platform:    domain.PlatformIOS,
		Category:    "review",
		Order:       11,
	},
	{
		Title:       "デモ動画",
		Description: "アプリのデモンストレーション動画（必要に応じて）",
		Platform:    domain.PlatformIOS,
		Category:    "assets",
		Order:       12,
	},
	{
		Title:       "暗号化の有無",
		Description: "Export Compliance: 暗号化の使用有無",
		Platform:    domain.PlatformIOS,
		Category:    "legal",
		Order:       13,
	},
}

// defaultChecklistAndroid lists the Google Play listing requirements
var defaultChecklistAndroid = []ChecklistTemplate{
	{
		Title:       "アプリ名",
		Description: "Google Playに表示されるアプリケーション名（50文字以内）",
		Platform:    domain.PlatformAndroid,
		Category:    "basic_info",
		Order:       1,
	},
	{
		Title:       "パッケージ名",
		Description: "アプリケーションの一意な識別子（例: com.company.appname）",
		Platform:    domain.PlatformAndroid,
		Category:    "basic_info",
		Order:       2,
	},
	{
		Title:       "カテゴリ",
		Description: "Google Playのカテゴリ選択",
		Platform:    domain.PlatformAndroid,
		Category:    "basic_info",
		Order:       3,
	},
	{
		Title:       "アプリアイコン",
		Description: "512x512pxのアプリアイコン（PNG形式）",
		Platform:    domain.PlatformAndroid,
		Category:    "assets",
		Order:       4,
	},
	{
		Title:       "Feature Graphic",
		Description: "1024x500pxの横長画像（JPGまたはPNG形式）",
		Platform:    domain.PlatformAndroid,
		Category:    "assets",
		Order:       5,
	},
	{
		Title:       "スクリーンショット",
		Description: "各デバイスタイプごとに2〜8枚のスクリーンショット",
		Platform:    domain.PlatformAndroid,
		Category:    "assets",
		Order:       6,
	},
	{
		Title:       "簡単な説明",
		Description: "80文字以内の短い説明",
		Platform:    domain.PlatformAndroid,
		Category:    "content",
		Order:       7,
	},
	{
		Title:       "詳細説明",
		Description: "4000文字以内の詳細説明",
		Platform:    domain.PlatformAndroid,
		Category:    "content",
		Order:       8,
	},
	{
		Title:       "プライバシーポリシー",
		Description: "プライバシーポリシーと設置URL",
		Platform:    domain.PlatformAndroid,
		Category:    "legal",
		Order:       9,
	},
	{
		Title:       "コンテンツレーティング",
		Description: "コンテンツレーティングアンケートの回答",
		Platform:    domain.PlatformAndroid,
		Category:    "legal",
		Order:       10,
	},
}
