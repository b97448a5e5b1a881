package template

import (
	"app-submission-api/internal/domain"
)

// defaultPhases is the built-in native app submission workflow.
// Phase numbers are 1..9 and unique; task Order is dense per phase.
var defaultPhases = []Phase{
	{
		Number:      1,
		Name:        "アカウント登録",
		Description: "開発者アカウントの登録と初期設定",
		Tasks: []TaskTemplate{
			{
				StepNumber:      "1.1",
				Title:           "アカウント登録",
				Description:     "開発者アカウントの登録手続き",
				EstimatedDays:   "1-2日",
				AssignedTo:      "開発者",
				IOSSpecific:     "組織としてApple IDを登録し、Apple Developer Programへ登録する（DUNSナンバー取得が必須）。登録料: 年額99ドル (約16,500円)",
				AndroidSpecific: "Google Play Developer登録。登録料: 25ドル (約3,600円)",
				Priority:        domain.TaskPriorityHigh,
				Order:           1,
			},
			{
				StepNumber:    "1.2",
				Title:         "登録料の支払い",
				Description:   "デベロッパー登録料の支払い",
				EstimatedDays: "即時",
				AssignedTo:    "開発者",
				Priority:      domain.TaskPriorityHigh,
				Order:         2,
			},
			{
				StepNumber:    "1.3",
				Title:         "組織のデベロッパーアカウント作成",
				Description:   "法人として登録する場合の手続き",
				EstimatedDays: "1-2週間",
				AssignedTo:    "開発者",
				IOSSpecific:   "法人確認で登記簿謄本等の書類提出が必要",
				Priority:      domain.TaskPriorityHigh,
				Order:         3,
			},
			{
				StepNumber:    "1.4",
				Title:         "デベロッパー名設定",
				Description:   "ストアに表示される開発者名の設定",
				EstimatedDays: "即時",
				AssignedTo:    "開発者",
				IOSSpecific:   "後から変更可能だが、一度公開するとユーザーの目に触れるため、適切な名前を設定する（例：「公式」など）。DUNS番号との関連性も考慮",
				Priority:      domain.TaskPriorityMedium,
				Order:         4,
			},
		},
	},
	{
		Number:      2,
		Name:        "アプリ情報準備・メタデータ入力",
		Description: "アプリストアに掲載するための情報準備",
		Tasks: []TaskTemplate{
			{
				StepNumber:      "2.1",
				Title:           "アプリ情報入力",
				Description:     "アプリ名、説明、カテゴリ、スクリーンショット等の情報入力",
				EstimatedDays:   "1-3日",
				AssignedTo:      "開発者",
				IOSSpecific:     "アプリ名、バンドルID、カテゴリ、年齢制限の有無、アプリアイコン、スクリーンショット4枚以上、説明文、プライバシーポリシーと設置URL、バージョン号、ビルド番号",
				AndroidSpecific: "アプリ名 (50文字以内)、パッケージ名 (50文字以内)、ユニーク Graphic (横長画像 1024x500)、スクリーンショット (4000文字以内)、プライバシーポリシーと設置URL",
				Priority:        domain.TaskPriorityHigh,
				Order:           1,
			},
			{
				StepNumber:    "2.2",
				Title:         "デモ動画準備",
				Description:   "審査用のアプリデモンストレーション動画の準備",
				EstimatedDays: "1-2日",
				AssignedTo:    "開発者",
				IOSSpecific:   "必須 (レビューワーがアプリを十分検証できない場合)",
				Priority:      domain.TaskPriorityMedium,
				Order:         2,
			},
			{
				StepNumber:    "2.3",
				Title:         "テストアカウント準備",
				Description:   "審査用のテストアカウントの作成",
				EstimatedDays: "即時",
				AssignedTo:    "開発者",
				IOSSpecific:   "レビューワーがアプリを検証するためのテストアカウント",
				Priority:      domain.TaskPriorityHigh,
				Order:         3,
			},
			{
				StepNumber:    "2.4",
				Title:         "暗号化の有無申告",
				Description:   "export compliance: 暗号化の有無を申告",
				EstimatedDays: "即時",
				AssignedTo:    "開発者",
				IOSSpecific:   "export compliance設定",
				Priority:      domain.TaskPriorityMedium,
				Order:         4,
			},
		},
	},
	{
		Number:      3,
		Name:        "アプリビルド",
		Description: "アプリケーションのビルド作業",
		Tasks: []TaskTemplate{
			{
				StepNumber:      "3.1",
				Title:           "アプリビルド",
				Description:     "アプリケーションのビルド実行",
				EstimatedDays:   "1-3日",
				AssignedTo:      "開発者",
				IOSSpecific:     "通常 Xcode を使用 (IPAファイル)",
				AndroidSpecific: "通常 Android Studio を使用 (AAB形式)",
				Priority:        domain.TaskPriorityHigh,
				Order:           1,
			},
			{
				StepNumber:      "3.2",
				Title:           "ビルドツール選定",
				Description:     "使用するビルドツールの選定と準備",
				EstimatedDays:   "検討中",
				AssignedTo:      "開発者",
				AndroidSpecific: "ビルド化ツールは比較検討中",
				Priority:        domain.TaskPriorityMedium,
				Order:           2,
			},
		},
	},
	{
		Number:      4,
		Name:        "アプリアップロード",
		Description: "ビルドしたアプリのストアへのアップロード",
		Tasks: []TaskTemplate{
			{
				StepNumber:      "4.1",
				Title:           "ビルドファイルアップロード",
				Description:     "ビルドしたアプリファイルをストアにアップロード",
				EstimatedDays:   "即時",
				AssignedTo:      "開発者",
				IOSSpecific:     "Archive化する。IPAファイル",
				AndroidSpecific: "AABファイル",
				Priority:        domain.TaskPriorityHigh,
				Order:           1,
			},
			{
				StepNumber:      "4.2",
				Title:           "バージョン番号・ビルド番号設定",
				Description:     "アプリのバージョン情報の設定",
				EstimatedDays:   "即時",
				AssignedTo:      "開発者",
				IOSSpecific:     "必須",
				AndroidSpecific: "必須",
				Priority:        domain.TaskPriorityHigh,
				Order:           2,
			},
		},
	},
	{
		Number:      5,
		Name:        "テストトラック設定",
		Description: "テスト配信環境の設定",
		Tasks: []TaskTemplate{
			{
				StepNumber:      "5.1",
				Title:           "テストトラック設定",
				Description:     "クローズドテストの設定と実施",
				EstimatedDays:   "1-2日",
				AssignedTo:      "開発者",
				IOSSpecific:     "TestFlight を利用",
				AndroidSpecific: "Closed Testing (クローズドテスト) -> 開発者、テスター。最低12人以上が14日間オプトイン。バグ・フィードバック収集",
				Priority:        domain.TaskPriorityHigh,
				Order:           1,
			},
			{
				StepNumber:  "5.2",
				Title:       "テスト環境構築",
				Description: "テスト環境の準備とテスターの招待",
				AssignedTo:  "開発者",
				IOSSpecific: "TestFlight を利用",
				Priority:    domain.TaskPriorityHigh,
				Order:       2,
			},
		},
	},
	{
		Number:      6,
		Name:        "審査申請",
		Description: "ストア審査への申請準備と提出",
		Tasks: []TaskTemplate{
			{
				StepNumber:      "6.1",
				Title:           "審査用設定",
				Description:     "審査に必要な各種設定の完了",
				EstimatedDays:   "1-2日",
				AssignedTo:      "開発者",
				AndroidSpecific: "コンテンツレーティングアンケートの提出、Pricing and Distributionを設定",
				Priority:        domain.TaskPriorityHigh,
				Order:           1,
			},
			{
				StepNumber:    "6.2",
				Title:         "審査請求",
				Description:   "審査の正式な申請",
				EstimatedDays: "即時",
				AssignedTo:    "開発者",
				IOSSpecific:   "提出後はステータスが'Waiting for Review'となる",
				Priority:      domain.TaskPriorityHigh,
				Order:         2,
			},
			{
				StepNumber:  "6.3",
				Title:       "審査用メモ入力",
				Description: "審査担当者向けのメモや注意事項の記入",
				AssignedTo:  "開発者",
				IOSSpecific: "テストアカウント情報、アプリの挙動で特に確認してほしい点などを記載",
				Priority:    domain.TaskPriorityMedium,
				Order:       3,
			},
			{
				StepNumber:  "6.4",
				Title:       "プライバシーポリシー確認",
				Description: "プライバシーポリシーの最終確認",
				AssignedTo:  "開発者",
				IOSSpecific: "必ずWebで公開してリンクを設定",
				Priority:    domain.TaskPriorityHigh,
				Order:       4,
			},
		},
	},
	{
		Number:      7,
		Name:        "審査プロセス",
		Description: "ストア側による審査",
		Tasks: []TaskTemplate{
			{
				StepNumber:    "7.1",
				Title:         "レビュー",
				Description:   "Apple/Googleによるアプリ審査",
				EstimatedDays: "平均 2～7日 (場合により10日以上)",
				AssignedTo:    "Apple/Google",
				IOSSpecific:   "初回提出の場合、状況によってはもっとかかることもあります",
				Priority:      domain.TaskPriorityHigh,
				Order:         1,
			},
			{
				StepNumber:      "7.2",
				Title:           "リジェクト対応",
				Description:     "リジェクトされた場合の対応準備",
				AssignedTo:      "開発者",
				IOSSpecific:     "審査が通ればストアでの公開設定を行います。自動公開、公開日時指定も可能",
				AndroidSpecific: "審査が通ればストアでの公開設定を行います。自動公開、公開日時指定も可能",
				Priority:        domain.TaskPriorityMedium,
				Order:           2,
			},
		},
	},
	{
		Number:      8,
		Name:        "リジェクト対応・再審査",
		Description: "リジェクトされた場合の対応フロー",
		Tasks: []TaskTemplate{
			{
				StepNumber:    "8.1",
				Title:         "リジェクト通知確認",
				Description:   "リジェクト通知の内容確認",
				EstimatedDays: "即時",
				AssignedTo:    "開発者",
				IOSSpecific:   "リジェクト(却下)となった場合、理由がApp Store Connect上に英語で通知されます",
				Priority:      domain.TaskPriorityHigh,
				Order:         1,
			},
			{
				StepNumber:    "8.2",
				Title:         "リジェクト理由精査",
				Description:   "リジェクト理由の分析と原因特定",
				EstimatedDays: "1-3日",
				AssignedTo:    "開発者",
				IOSSpecific:   "通知された内容を精査し、原因を特定します",
				Priority:      domain.TaskPriorityHigh,
				Order:         2,
			},
			{
				StepNumber:    "8.3",
				Title:         "修正対応",
				Description:   "リジェクト理由に基づいた修正作業",
				EstimatedDays: "1-5日",
				AssignedTo:    "開発者",
				IOSSpecific:   "リジェクト理由に基づいた修正を行います",
				Priority:      domain.TaskPriorityHigh,
				Order:         3,
			},
			{
				StepNumber:    "8.4",
				Title:         "再申請",
				Description:   "修正後の再度審査申請",
				EstimatedDays: "即時",
				AssignedTo:    "開発者",
				IOSSpecific:   "修正後、再度審査を申請します",
				Priority:      domain.TaskPriorityHigh,
				Order:         4,
			},
		},
	},
	{
		Number:      9,
		Name:        "公開",
		Description: "アプリの公開とリリース後の対応",
		Tasks: []TaskTemplate{
			{
				StepNumber:    "9.1",
				Title:         "公開設定",
				Description:   "ストアでの公開設定",
				EstimatedDays: "即時",
				AssignedTo:    "開発者",
				IOSSpecific:   "審査通過後、ストアでの公開設定を行います。自動公開、公開日時指定も可能です",
				Priority:      domain.TaskPriorityHigh,
				Order:         1,
			},
			{
				StepNumber:    "9.2",
				Title:         "公開",
				Description:   "アプリの正式リリース",
				EstimatedDays: "即時",
				AssignedTo:    "Apple/Google",
				IOSSpecific:   "ユーザーからの評価やフィードバックをモニタリングし、問題があればアップデートを準備します",
				Priority:      domain.TaskPriorityHigh,
				Order:         2,
			},
		},
	},
}
