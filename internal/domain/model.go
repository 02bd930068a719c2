package domain

// UserModel is the GORM model for the users table. It exists only so the
// table can be created at bootstrap; reads and writes go through raw SQL.
type UserModel struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement"`
	FName string `gorm:"column:fname;type:varchar(255);not null"`
	LName string `gorm:"column:lname;type:varchar(255);not null"`
}

// TableName specifies the table name for UserModel.
func (UserModel) TableName() string { return "users" }

// QuestionModel is the GORM model for the questions table.
type QuestionModel struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Title    string `gorm:"column:title;type:varchar(255);not null"`
	Body     string `gorm:"column:body;type:text;not null"`
	AuthorID int64  `gorm:"column:author_id;not null;index"`
}

// TableName specifies the table name for QuestionModel.
func (QuestionModel) TableName() string { return "questions" }

// ReplyModel is the GORM model for the replies table. ReplyID is the parent
// reply and is NULL for top-level replies.
type ReplyModel struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	QuestionID int64  `gorm:"column:question_id;not null;index"`
	ReplyID    *int64 `gorm:"column:reply_id;index"`
	UserID     int64  `gorm:"column:user_id;not null;index"`
}

// TableName specifies the table name for ReplyModel.
func (ReplyModel) TableName() string { return "replies" }

// QuestionFollowModel is the GORM model for the question_follows join table.
type QuestionFollowModel struct {
	ID         int64 `gorm:"column:id;primaryKey;autoIncrement"`
	QuestionID int64 `gorm:"column:question_id;not null;index"`
	UserID     int64 `gorm:"column:user_id;not null;index"`
}

// TableName specifies the table name for QuestionFollowModel.
func (QuestionFollowModel) TableName() string { return "question_follows" }

// QuestionLikeModel is the GORM model for the question_likes join table.
type QuestionLikeModel struct {
	ID         int64 `gorm:"column:id;primaryKey;autoIncrement"`
	UserID     int64 `gorm:"column:user_id;not null;index"`
	QuestionID int64 `gorm:"column:question_id;not null;index"`
}

// TableName specifies the table name for QuestionLikeModel.
func (QuestionLikeModel) TableName() string { return "question_likes" }

// Models lists every table model in creation order.
func Models() []interface{} {
	return []interface{}{
		&UserModel{},
		&QuestionModel{},
		&ReplyModel{},
		&QuestionFollowModel{},
		&QuestionLikeModel{},
	}
}
