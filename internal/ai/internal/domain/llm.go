// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"fmt"

	"github.com/ecodeclub/ekit/slice"
)

// 响应处理流水线里会用到的 biz
const (
	// BizTranscriptStructure 把整段转写文本划分成带时间戳的语义分段
	BizTranscriptStructure = "transcript_structure"
	// BizSegmentAnnotate 在问题上下文里标注每个分段（红旗、疑点、标题）
	BizSegmentAnnotate = "segment_annotate"
	// BizFactCheck 用候选人的领英资料交叉核对分段里的事实性陈述
	BizFactCheck = "fact_check"
	// BizResponseAnalysis 针对单个问题的回答给出结构化评价
	BizResponseAnalysis = "response_analysis"
	// BizRollupOverall 汇总全部回答给出总体评价
	BizRollupOverall = "rollup_overall"
)

// BizRollupCategory 各个问题类别的汇总 biz，形如 rollup_basic
func BizRollupCategory(category string) string {
	return "rollup_" + category
}

type LLMRequest struct {
	Biz string
	Uid int64
	// 请求id
	Tid string
	// 用户的输入
	Input []string
	// 业务相关的配置
	Config BizConfig

	// prompt 将 input 和 PromptTemplate 结合之后生成的正儿八经的 Prompt
	prompt string
}

func (req *LLMRequest) Prompt() string {
	if req.prompt == "" {
		args := slice.Map(req.Input, func(idx int, src string) any {
			return src
		})
		req.prompt = fmt.Sprintf(req.Config.PromptTemplate, args...)
	}
	return req.prompt
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// 花费的金额
	Amount int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	Id  int64
	Biz string
	// 使用的模型
	Model string
	// 多少分钱/1000 token
	Price int64

	Temperature float64
	TopP        float64
	// JSONMode 要求模型只输出 JSON 对象
	JSONMode bool

	// 系统 Prompt
	SystemPrompt string
	// 允许的最长输入
	// 这里我们不用计算 token，只需要简单约束一下字符串长度就可以
	MaxInput int
	// 提示词。这里一般使用 %s 占位
	PromptTemplate string
	Utime          int64
}

type LLMRecord struct {
	Id             int64
	Tid            string
	Uid            int64
	Biz            string
	Tokens         int64
	Amount         int64
	Input          []string
	Status         RecordStatus
	PromptTemplate string
	Answer         string
	Ctime          int64
	Utime          int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)
